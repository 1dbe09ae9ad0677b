package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDriver      string `yaml:"db_driver"`
	DBDSN         string `yaml:"db_dsn"`
	ServerPort    string `yaml:"server_port"`
	SessionSecret string `yaml:"session_secret"`
	LogLevel      string `yaml:"log_level"`
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`
	TemplatesGlob string `yaml:"templates_glob"`
}

// Load builds the config from an optional YAML file (WORKLOG_CONFIG) with
// environment variables taking precedence.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if path := os.Getenv("WORKLOG_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read config file %s: %v", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			log.Fatalf("parse config file %s: %v", path, err)
		}
	}

	overlay(&cfg.DBDriver, "DB_DRIVER")
	overlay(&cfg.DBDSN, "DB_DSN")
	overlay(&cfg.ServerPort, "SERVER_PORT")
	overlay(&cfg.SessionSecret, "SESSION_SECRET")
	overlay(&cfg.LogLevel, "LOG_LEVEL")
	overlay(&cfg.AdminUsername, "ADMIN_USERNAME")
	overlay(&cfg.AdminPassword, "ADMIN_PASSWORD")

	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.DBDSN == "" {
		if cfg.DBDriver == "sqlite" {
			cfg.DBDSN = "worklog.db"
		} else {
			log.Fatal("DB_DSN is not set")
		}
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.TemplatesGlob == "" {
		cfg.TemplatesGlob = "web/templates/*.html"
	}

	return cfg
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
