package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"post_polls/configs"
	"post_polls/internal/db"
	"post_polls/internal/db/repositories"
	"post_polls/internal/di"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot"
	"post_polls/internal/tg_bot/commands"
	"post_polls/internal/tg_bot/handlers"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const healthCheckPath = "/poll-bot/healthcheck"

func main() {
	config, err := configs.LoadPollBotConfig()
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

	go func() {
		logger.Info("setting up health check server")
		settingUpHealthCheckServer(config.App.HealthCheckAddr, logger)
	}()

	logger.Info("starting bot")
	pollService := services.NewPollService(
		repositories.NewPollRepository(database),
		repositories.NewOptionRepository(database),
		repositories.NewTransactor(database),
		logger,
	)

	tgbot.NewBot(
		handlers.NewPollBotCommandHandler(logger, newCommands(pollService, logger)),
	).Start(config.PollBot, logger)
}

func newCommands(pollService services.PollService, logger *zap.SugaredLogger) []commands.Command {
	return []commands.Command{
		commands.NewStartCommand(),
		commands.NewNewPollCommand(pollService, logger),
		commands.NewNewMultiPollCommand(pollService, logger),
		commands.NewPollCommand(pollService, logger),
		commands.NewVoteCommand(pollService, logger),
		commands.NewEditOptionsCommand(pollService, logger),
		commands.NewClosePollCommand(pollService, logger),
		commands.NewMyPollsCommand(pollService, logger),
		commands.NewPostPollsCommand(pollService, logger),
	}
}

func settingUpHealthCheckServer(addr string, logger *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.HandleFunc(healthCheckPath, healthCheckHandler)

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorw("failed to shutdown http server", "error", err)
			return
		}

		logger.Info("shutting down")
		os.Exit(0)
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("failed to start http server", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
