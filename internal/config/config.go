// README: Config loader with env defaults for HTTP, maps, AI, and price store settings.
package config

import (
	"os"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	AI struct {
		GeminiKey string
	}
	FuelPrice struct {
		// Driver selects the store backend: "file" or "sqlite".
		Driver string
		Path   string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("COURIER_HTTP_ADDR", ":8080")
	cfg.Maps.APIKey = envOrError("GOOGLE_MAPS_API_KEY")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.FuelPrice.Driver = envOrDefault("COURIER_FUEL_PRICE_DRIVER", "file")
	cfg.FuelPrice.Path = envOrDefault("COURIER_FUEL_PRICE_PATH", "fuel_price.json")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}
