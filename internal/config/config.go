package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service    *svcConfig
	Simulation *simulationConfig
}

type svcConfig struct {
	Address        string   `envconfig:"FARM_INCOME_ADDRESS" default:":8080"`
	MetricsAddress string   `envconfig:"FARM_INCOME_METRICS_ADDRESS" default:":8081"`
	LogLevel       string   `envconfig:"FARM_INCOME_LOG_LEVEL" default:"info"`
	AllowedOrigins []string `envconfig:"FARM_INCOME_ALLOWED_ORIGINS" default:"*"`
}

type simulationConfig struct {
	MaxSweepPoints int `envconfig:"FARM_INCOME_MAX_SWEEP_POINTS" default:"500"`
	MaxScenarios   int `envconfig:"FARM_INCOME_MAX_SCENARIOS" default:"4"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		cfg := new(Config)
		if err := envconfig.Process("", cfg); err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// NewDefault returns the configuration with every default applied, ignoring the environment.
func NewDefault() *Config {
	return &Config{
		Service: &svcConfig{
			Address:        ":8080",
			MetricsAddress: ":8081",
			LogLevel:       "info",
			AllowedOrigins: []string{"*"},
		},
		Simulation: &simulationConfig{
			MaxSweepPoints: 500,
			MaxScenarios:   4,
		},
	}
}
