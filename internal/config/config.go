package config

import (
	"os"
)

type Config struct {
	AppPort string

	// Path to a Firebase service-account JSON file.
	// Empty means Application Default Credentials.
	ServiceAccountPath string
}

func Load() Config {

	cfg := Config{

		AppPort: os.Getenv("PORT"),

		ServiceAccountPath: os.Getenv("SERVICE_ACCOUNT_PATH"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	return cfg

}
