package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/luachboard/luach/internal/config"
)

// loadEnvironment pulls a local .env file if present, then reads the config
func loadEnvironment() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}
	return config.Load()
}
