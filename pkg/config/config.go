package config

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"
	"tg-hangman-bot/pkg/logger"
)

type Config struct {
	Database DatabaseConfig `json:"database"`
	Telegram TelegramConfig `json:"telegram"`
	Logging  LoggingConfig  `json:"logging"`
}

type DatabaseConfig struct {
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	Port     int    `json:"port"`
	SSLMode  string `json:"sslmode"`
}

type TelegramConfig struct {
	Token          string `json:"token"`
	TranslateToken string `json:"translate_token"`
}

type LoggingConfig struct {
	Level     string `json:"level"`
	File      string `json:"file"`
	GormLevel string `json:"gorm_level"`
}

var AppConfig Config

// LoadConfig reads the JSON config file and applies environment
// overrides. A .env file in the working directory is loaded first if
// present; TELEGRAM_TOKEN and TRANSLATE_TOKEN always win over the file.
func LoadConfig(filename string) error {
	_ = godotenv.Load()

	file, err := os.Open(filename)
	if err != nil {
		logger.Error("failed to open config file", "error", err)
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&AppConfig); err != nil {
		logger.Error("failed to decode config file", "error", err)
		return err
	}

	applyEnvOverrides()
	return nil
}

func applyEnvOverrides() {
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		AppConfig.Telegram.Token = token
	}
	if token := os.Getenv("TRANSLATE_TOKEN"); token != "" {
		AppConfig.Telegram.TranslateToken = token
	}
}
