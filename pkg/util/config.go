package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func SetDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")

	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	viper.SetDefault("MAX_LOOPS", 300)
	viper.SetDefault("HEURISTIC_SCALE", 1.1)
	viper.SetDefault("MAX_RESTARTS", 8)
	viper.SetDefault("BEAM_WIDTH", 3)

	viper.SetDefault("MAPS_DIR", "./data/maps")
	viper.SetDefault("WATCH_MAPS", true)
	viper.SetDefault("ROUTE_CACHE_SIZE", 4096)
	viper.SetDefault("BATCH_WORKERS", 4)
}

// ReadConfig loads config.yaml from dir (./data/ when empty). A missing file is not an error,
// defaults and environment variables still apply.
func ReadConfig(dir string) error {
	SetDefaults()
	if dir == "" {
		dir = "./data/"
	}
	viper.SetConfigName("config")
	viper.AddConfigPath(dir)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
