package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig    `yaml:"databaseConfig"`
	RedisConfig    RedisConfig       `yaml:"redisConfig"`
	ServerAddr     string            `yaml:"serverAddr"`
	Drive          DriveConfig       `yaml:"driveConfig"`
	JWT            JWTConfig         `yaml:"jwt"`
	GoogleOAuth    GoogleOAuthConfig `yaml:"googleOAuth"`
	Webhook        WebhookConfig     `yaml:"webhook"`
	Admin          AdminConfig       `yaml:"admin"`
	TTL            TTL               `yaml:"TTL"`
}

func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	if cfg.Drive.ServiceAccountFile == "" {
		return nil, fmt.Errorf("driveConfig.service_account_file обязателен")
	}
	if cfg.Drive.SharedDriveID == "" {
		return nil, fmt.Errorf("driveConfig.shared_drive_id обязателен")
	}
	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("jwt.secret_key обязателен")
	}

	return &cfg, nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
