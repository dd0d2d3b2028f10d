package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/jdecked/cs152-final/internal/entity"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort  string `yaml:"http-port" env:"HTTP_PORT" env-default:"8000"`
	StaticDir string `yaml:"static-dir" env:"STATIC_DIR" env-default:""`
	Engine    Engine `yaml:"engine"`
	Redis     Redis  `yaml:"redis"`
}

type Engine struct {
	Rows      int  `yaml:"rows" env:"ENGINE_ROWS" env-default:"3"`
	Cols      int  `yaml:"cols" env:"ENGINE_COLS" env-default:"3"`
	WinLength int  `yaml:"win-length" env:"ENGINE_WIN_LENGTH" env-default:"3"`
	Gravity   bool `yaml:"gravity" env:"ENGINE_GRAVITY" env-default:"false"`
	Depth     int  `yaml:"depth" env:"ENGINE_DEPTH" env-default:"6"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Engine) Rules() entity.Rules {
	return entity.Rules{
		Rows:      that.Rows,
		Cols:      that.Cols,
		WinLength: that.WinLength,
		Gravity:   that.Gravity,
	}
}
