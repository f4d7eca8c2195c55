package config

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type DBType string

const (
	DBTypeSQLite   DBType = "sqlite"
	DBTypeInMemory DBType = "inMemory"
)

type Config struct {
	// Адрес на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Тип хранилища
	DBType DBType `env:"DB" envDefault:"inMemory"`
	// Путь к файлу sqlite (для DBType=sqlite)
	SQLiteDBPath string `env:"SQLITE_PATH"`
	// Ключ подписи сессионных JWT
	JWTSecret string `env:"JWT_SECRET"`
	Logger    *logrus.Logger
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config
	logger := initLogger()

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	loadsFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	conf.Logger = logger

	if conf.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return conf, nil
}

// MustLoadConfig вызывает панику если произошла ошибка.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// loadsFlags парсит флаги командной строки.
func loadsFlags(flagsConfig *Config) {
	flag.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	flag.StringVar(&flagsConfig.SQLiteDBPath, "f", "linkward.db", "Путь к файлу sqlite")

	flag.Parse()
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress: defaultIfBlank[string](envConfig.ServerAddress, flagsConfig.ServerAddress),
		DBType:        defaultIfBlank[DBType](envConfig.DBType, flagsConfig.DBType),
		SQLiteDBPath:  defaultIfBlank[string](envConfig.SQLiteDBPath, flagsConfig.SQLiteDBPath),
		JWTSecret:     defaultIfBlank[string](envConfig.JWTSecret, flagsConfig.JWTSecret),
	}
}

func defaultIfBlank[T any](value T, defaultValue T) T {
	if v, ok := any(value).(string); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(DBType); ok && v == "" {
		return defaultValue
	}
	return value
}
