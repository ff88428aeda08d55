package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_MONGO_URI points to a disposable MongoDB, scenarios are skipped without it
	MongoURI      string `envconfig:"E2E_MONGO_URI"`
	MongoDatabase string `envconfig:"E2E_MONGO_DATABASE" default:"tweet_lab_e2e"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
