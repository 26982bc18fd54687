package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"

	OpponentHuman  = "human"
	OpponentRandom = "random"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	SQLite   SQLite  `yaml:"sqlite"`
	Opponent string  `yaml:"opponent" env:"OPPONENT" env-default:"human"`
	Games    int     `yaml:"games" env:"GAMES" env-default:"1"`
}

type Storage struct {
	Type string `yaml:"type" env:"STORAGE_TYPE" env-default:"file"`
	Path string `yaml:"path" env:"LOSE_RECORDS_PATH" env-default:"loserecords.txt"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Key  string `yaml:"key" env:"REDIS_KEY" env-default:"loserecords"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"loserecords.db"`
}

// MustLoad - load configuration from the yml file at path, or from the
// environment alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat config: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

var (
	ErrUnknownStorage  = errors.New("unknown storage type")
	ErrUnknownOpponent = errors.New("unknown opponent")
	ErrInvalidGames    = errors.New("games must be positive")
)

func (that *Config) validate() error {
	switch that.Storage.Type {
	case StorageFile, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage.Type)
	}

	switch that.Opponent {
	case OpponentHuman, OpponentRandom:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOpponent, that.Opponent)
	}

	if that.Games < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidGames, that.Games)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
