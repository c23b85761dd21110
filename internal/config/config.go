package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken  string `mapstructure:"TELEGRAM_TOKEN"`
	ScheduleAPIURL string `mapstructure:"SCHEDULE_API"`
	Environment    string `mapstructure:"ENV"`
	Timezone       string `mapstructure:"TIMEZONE"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	// Читаем напрямую из переменных окружения (после godotenv.Load они там)
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		ScheduleAPIURL: os.Getenv("SCHEDULE_API"),
		Environment:    os.Getenv("ENV"),
		Timezone:       os.Getenv("TIMEZONE"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Kyiv"
	}

	// Проверяем обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.ScheduleAPIURL == "" {
		return nil, fmt.Errorf("SCHEDULE_API is required but not set")
	}

	return cfg, nil
}
