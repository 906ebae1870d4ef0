package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/luachboard/luach/internal/http/api"
	"github.com/luachboard/luach/internal/stubapi"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	addr := os.Getenv("STUB_ADDRESS")
	if addr == "" {
		addr = ":8000"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	api.MountGroup(r, api.GroupConfig{}, stubapi.Module())

	log.Info().Str("address", addr).Msg("stub companion backend listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
