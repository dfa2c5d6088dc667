package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrUnknownStorage = errors.New("unknown storage")

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort        string        `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	Storage         string        `yaml:"storage" env:"STORAGE" env-default:"memory"`
	SessionTTL      time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"1h"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	Redis           Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load reads the config file at path, falling back to the environment alone
// when the file does not exist. Environment variables override file values.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) validate() error {
	switch that.Storage {
	case StorageMemory, StorageRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
