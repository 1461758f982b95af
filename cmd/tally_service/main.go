package main

import (
	"context"
	"fmt"
	"post_polls/configs"
	"post_polls/internal/db"
	"post_polls/internal/db/repositories"
	"post_polls/internal/di"
	"post_polls/internal/services"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const refreshTimeout = time.Minute

func main() {
	config, err := configs.LoadTallyServiceConfig()
	logger := di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	logger.Info("initializing repositories and services")
	pollService := services.NewPollService(
		repositories.NewPollRepository(database),
		repositories.NewOptionRepository(database),
		repositories.NewTransactor(database),
		logger,
	)

	s, err := newScheduler(config.Tally, func() { refreshVoteCounters(pollService, logger) })
	if err != nil {
		logger.Fatalw("failed to schedule vote counter refresh", "error", err)
	}

	logger.Infow("tally service started", "cron", config.Tally.Cron, "timezone", config.Tally.Timezone)
	s.StartBlocking()
}

func newScheduler(config configs.Tally, job func()) (*gocron.Scheduler, error) {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", config.Timezone, err)
	}

	s := gocron.NewScheduler(location)
	s.SingletonModeAll()

	if _, err := s.Cron(config.Cron).Do(job); err != nil {
		return nil, fmt.Errorf("failed to schedule %q: %w", config.Cron, err)
	}

	return s, nil
}

func refreshVoteCounters(pollService services.PollService, logger *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	updated, err := pollService.RefreshVoteCounters(ctx)
	if err != nil {
		logger.Errorw("failed to refresh vote counters", "error", err)
		return
	}

	if updated == 0 {
		logger.Info("no vote counters to update")
		return
	}

	logger.Infow("vote counters updated", "polls", updated)
}
