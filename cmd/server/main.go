package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/luachboard/luach/internal/companion"
	"github.com/luachboard/luach/internal/dashboard"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// load configuration
	cfg, err := loadEnvironment()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.Environment == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := companion.NewClient(cfg.EndpointBase)
	dash := dashboard.New(client, cfg.Latitude, cfg.Longitude)

	// warm the board; sections show placeholders until their response lands
	dash.RefreshAsync(context.Background())

	// periodic re-render keeps the board fresh between page loads
	sched := cron.New()
	if _, err := sched.AddFunc(cfg.RefreshSchedule, func() {
		dash.RefreshAll(context.Background())
	}); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.RefreshSchedule).Msg("invalid refresh schedule")
	}
	sched.Start()

	// set up gin router
	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, dash, LoadTemplates())

	// start
	log.Info().
		Str("address", cfg.ServerAddress).
		Str("endpoint_base", cfg.EndpointBase).
		Float64("latitude", cfg.Latitude).
		Float64("longitude", cfg.Longitude).
		Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
