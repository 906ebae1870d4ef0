package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds environment-based settings
type Config struct {
	Environment     string
	ServerAddress   string
	EndpointBase    string
	Latitude        float64
	Longitude       float64
	RefreshSchedule string
}

const (
	defaultEndpointBase = "http://localhost:8000"
	// Jerusalem
	defaultLatitude  = 31.7719
	defaultLongitude = 35.2170
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}
	base := os.Getenv("ENDPOINT_BASE")
	if base == "" {
		base = defaultEndpointBase
	}
	schedule := os.Getenv("REFRESH_SCHEDULE")
	if schedule == "" {
		schedule = "@every 10m"
	}

	lat, err := floatEnv("LATITUDE", defaultLatitude)
	if err != nil {
		return nil, err
	}
	lon, err := floatEnv("LONGITUDE", defaultLongitude)
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment:     os.Getenv("APP_ENV"),
		ServerAddress:   addr,
		EndpointBase:    base,
		Latitude:        lat,
		Longitude:       lon,
		RefreshSchedule: schedule,
	}, nil
}

func floatEnv(name string, fallback float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, raw)
	}
	return v, nil
}
