package config

import (
	"errors"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type HTTP struct {
	Host         string        `yaml:"host" env:"DPM_HOST" env-default:"localhost"`
	Port         uint          `yaml:"port" env:"DPM_PORT" env-default:"3000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"DPM_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"DPM_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"DPM_IDLE_TIMEOUT" env-default:"1m"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"DPM_STORAGE" env-default:"memory"`
	Path   string `yaml:"path" env:"DPM_SQLITE_PATH" env-default:"dpm.db"`
}

type Listing struct {
	PageSize int `yaml:"page_size" env:"DPM_PAGE_SIZE" env-default:"10"`
}

type Config struct {
	LogLevel string  `yaml:"log_level" env:"DPM_LOG_LEVEL" env-default:"INFO"`
	HTTP     HTTP    `yaml:"http"`
	Storage  Storage `yaml:"storage"`
	Listing  Listing `yaml:"listing"`
}

// Load reads a .env file if there is one, then configPath, then the
// environment. A missing config file is not an error.
func Load(configPath string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}

	if configPath == "" {
		return cfg, validate(cleanenv.ReadEnv(&cfg), cfg)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return cfg, err
		}
		return cfg, validate(cleanenv.ReadEnv(&cfg), cfg)
	}
	return cfg, validate(nil, cfg)
}

func MustLoad(configPath string) Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}
	return cfg
}

var ErrUnknownStorage = errors.New("storage driver must be memory or sqlite")

func validate(err error, cfg Config) error {
	if err != nil {
		return err
	}
	if cfg.Storage.Driver != StorageMemory && cfg.Storage.Driver != StorageSQLite {
		return ErrUnknownStorage
	}
	return nil
}

// Level maps LogLevel onto slog, defaulting to Info.
func (c Config) Level() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

