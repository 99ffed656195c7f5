package config

import (
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type StorageType string

const (
	StorageTypeInMemory StorageType = "inMemory"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypePostgres StorageType = "postgres"
)

type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS" yaml:"server_address" default:"localhost:8080"`
	// Базовый адрес результирующего сокращенного URL. Пустой означает Scheme://Host входящего запроса.
	BaseURL string `env:"BASE_URL" yaml:"base_url"`
	// Тип хранилища
	StorageType StorageType `env:"STORAGE_TYPE" yaml:"storage_type" default:"inMemory"`
	SQLitePath  string      `env:"SQLITE_PATH" yaml:"sqlite_path" default:"shortlinks.sqlite3"`
	DatabaseDSN string      `env:"DATABASE_DSN" yaml:"database_dsn"`
	// Таймаут обработки одного запроса, включая обращения к хранилищу
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout" default:"3s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" default:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" yaml:"log_level"`
	LogEncoding     string        `env:"LOG_ENCODING" yaml:"log_encoding"`
	MaxSlugAttempts int           `env:"MAX_SLUG_ATTEMPTS" yaml:"max_slug_attempts" default:"10"`
	// Логирование SQL запросов
	DBDebug bool `env:"DB_DEBUG" yaml:"db_debug"`
}

// LoadOptions источники конфигурации помимо окружения.
type LoadOptions struct {
	// ConfigFile путь к YAML файлу. Пустой путь пропускается.
	ConfigFile string
	// EnvFile путь к .env файлу. Отсутствующий файл пропускается.
	EnvFile string
	// ApplyFlags переносит явно заданные флаги командной строки в конфиг.
	ApplyFlags func(*Config)
}

// LoadConfig собирает конфиг из значений по умолчанию, YAML файла, флагов и окружения.
// Приоритет по возрастанию: default-теги, YAML, флаги, переменные окружения (включая .env).
func LoadConfig(opts LoadOptions) (*Config, error) {
	var conf Config
	if err := defaults.Set(&conf); err != nil {
		return nil, errors.Wrap(err, "set default config")
	}

	if opts.ConfigFile != "" {
		raw, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return nil, errors.Wrapf(err, "read config file %s", opts.ConfigFile)
		}
		if err := yaml.Unmarshal(raw, &conf); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", opts.ConfigFile)
		}
		// Ключи, заданные в YAML пустыми, снова получают значения по умолчанию.
		if err := defaults.Set(&conf); err != nil {
			return nil, errors.Wrap(err, "set default config")
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "load env file %s", opts.EnvFile)
		}
	}

	if opts.ApplyFlags != nil {
		opts.ApplyFlags(&conf)
	}

	if err := env.Parse(&conf); err != nil {
		return nil, errors.Wrap(err, "parse ENV config error")
	}

	if err := conf.normalize(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// MustLoadConfig как LoadConfig, но паникует при ошибке.
func MustLoadConfig(opts LoadOptions) *Config {
	conf, err := LoadConfig(opts)
	if err != nil {
		panic(err)
	}
	return conf
}

func (c *Config) normalize() error {
	switch c.StorageType {
	case StorageTypeInMemory, StorageTypeSQLite, StorageTypePostgres:
	default:
		return errors.Errorf("unknown storage type %q", c.StorageType)
	}
	if c.StorageType == StorageTypePostgres && c.DatabaseDSN == "" {
		return errors.New("database dsn is required for postgres storage")
	}
	if c.MaxSlugAttempts <= 0 {
		return errors.Errorf("max slug attempts must be positive, got %d", c.MaxSlugAttempts)
	}

	if c.BaseURL != "" {
		parsedURL, err := url.ParseRequestURI(c.BaseURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}
		if parsedURL.Scheme == "" || parsedURL.Host == "" {
			return errors.Errorf("base url %q must contain scheme and host", c.BaseURL)
		}
		// Отсекаем Path и Query, если они заданы в базовом урле.
		c.BaseURL = (&url.URL{Scheme: parsedURL.Scheme, Host: parsedURL.Host}).String()
	}
	return nil
}
