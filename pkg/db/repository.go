// pkg/db/repository.go
package db

import (
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"tg-hangman-bot/pkg/config"
	"tg-hangman-bot/pkg/logger"
)

var DB *gorm.DB

func InitDB(cfg config.DatabaseConfig) error {
	var err error
	dsn := "host=" + cfg.Host +
		" user=" + cfg.User +
		" password=" + cfg.Password +
		" dbname=" + cfg.DBName +
		" port=" + strconv.Itoa(cfg.Port) +
		" sslmode=" + cfg.SSLMode
	gormLogger, gormErr := newGormLogger(config.AppConfig.Logging.GormLevel)
	if gormErr != nil {
		logger.Error("invalid gorm log level", "value", config.AppConfig.Logging.GormLevel, "error", gormErr)
	}
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return err
	}
	if err := Migrate(DB); err != nil {
		logger.Error("failed to auto-migrate database", "error", err)
		return err
	}
	return nil
}

// Migrate creates or updates the schema for every model in this package.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&PlayerProfile{},
		&DailyChallengeGate{},
		&EmojiSettings{},
		&GameRecord{},
	)
}
