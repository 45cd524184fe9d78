package internal

import (
	"github.com/kelseyhightower/envconfig"
)

type RunEnv string

const (
	Development RunEnv = "development"
	Production  RunEnv = "production"
)

type Config struct {
	Env        RunEnv `envconfig:"ENV" default:"development"`
	EchoAddr   string `envconfig:"ECHO_ADDR" default:":8080"`
	EngineMode string `envconfig:"ENGINE_MODE" default:"memory"`
	EngineUrl  string `envconfig:"ENGINE_URL" default:"http://search:8983"`

	// Widget configuration for the demo search page.
	FacetAttributes []string `envconfig:"FACET_ATTRIBUTES" default:"categories.lvl0,categories.lvl1"`
	FacetSeparator  string   `envconfig:"FACET_SEPARATOR" default:" > "`
	FacetLimit      int      `envconfig:"FACET_LIMIT" default:"10"`
	FacetLimitMore  int      `envconfig:"FACET_LIMIT_MORE" default:"20"`
	HitsPerPage     int      `envconfig:"HITS_PER_PAGE" default:"8"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
