package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	GRPCAddr string  `yaml:"grpc-addr" env:"TICTACTOE_GRPC_ADDR" env-default:":50051"`
	HTTPAddr string  `yaml:"http-addr" env:"TICTACTOE_HTTP_ADDR" env-default:":8080"`
	Sessions Session `yaml:"sessions"`
}

type Session struct {
	Shards int           `yaml:"shards" env:"TICTACTOE_SESSION_SHARDS" env-default:"64"`
	TTL    time.Duration `yaml:"ttl" env:"TICTACTOE_SESSION_TTL" env-default:"30m"`
	Sweep  time.Duration `yaml:"sweep" env:"TICTACTOE_SESSION_SWEEP" env-default:"1m"`
}

// Load reads the YAML file at path, or only the environment when path is empty.
// Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
