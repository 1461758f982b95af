package configs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

type PollBotConfig struct {
	App     App
	DB      DB
	Logger  Logger
	PollBot PollBot
}

type TallyServiceConfig struct {
	App    App
	DB     DB
	Logger Logger
	Tally  Tally
}

func LoadPollBotConfig() (PollBotConfig, error) {
	var config PollBotConfig

	if err := load(&config); err != nil {
		return PollBotConfig{}, err
	}

	return config, nil
}

func LoadTallyServiceConfig() (TallyServiceConfig, error) {
	var config TallyServiceConfig

	if err := load(&config); err != nil {
		return TallyServiceConfig{}, err
	}

	return config, nil
}

// load reads an optional .env file and then parses the environment into config.
// Variables already present in the environment are not overridden by the file.
func load(config interface{}) error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", dotEnvFile, err)
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}
