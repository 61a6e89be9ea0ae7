package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string

	AllowedOrigins []string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost     string
	MailPort     int
	MailUser     string
	MailPass     string
	MailFrom     string
	MailNotifyTo string

	StorageURL        string
	StorageServiceKey string

	AdminJWTSecret string
}

func NewConfig() *Config {
	allowedOrigins := []string{"http://localhost:5173"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		allowedOrigins = strings.Split(v, ",")
	}

	mailPort := 587
	if v := os.Getenv("MAIL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			mailPort = p
		}
	}

	return &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		AllowedOrigins: allowedOrigins,

		RabbitUser: getEnvOrDefault("RABBITMQ_USER", "guest"),
		RabbitPass: getEnvOrDefault("RABBITMQ_PASS", "guest"),
		RabbitHost: getEnvOrDefault("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnvOrDefault("RABBITMQ_PORT", "5672"),

		MailHost:     os.Getenv("MAIL_HOST"),
		MailPort:     mailPort,
		MailUser:     os.Getenv("MAIL_USER"),
		MailPass:     os.Getenv("MAIL_PASS"),
		MailFrom:     getEnvOrDefault("MAIL_FROM", "nao-responda@libertyaulas.com.br"),
		MailNotifyTo: os.Getenv("MAIL_NOTIFY_TO"),

		StorageURL:        os.Getenv("STORAGE_URL"),
		StorageServiceKey: os.Getenv("STORAGE_SERVICE_KEY"),

		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
