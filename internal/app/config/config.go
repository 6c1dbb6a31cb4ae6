package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	JWTSecret string

	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// The session-signing secret has no safe default.
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	cfg.RedisHost = os.Getenv("REDIS_HOST")
	if cfg.RedisHost == "" {
		cfg.RedisHost = "127.0.0.1"
	}
	cfg.RedisPort = 6379
	if p := os.Getenv("REDIS_PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.RedisPort = port
		}
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if d := os.Getenv("REDIS_DB"); d != "" {
		if db, err := strconv.Atoi(d); err == nil {
			cfg.RedisDB = db
		}
	}

	log.Info("config parsed")

	return cfg, nil
}
