package config

import (
	"fmt"
	"os"

	"github.com/photo-share/api-go/logger"
	"github.com/photo-share/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDatabase() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func InitDB() *gorm.DB {
	db, err := ConnectDatabase()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto Migrate models
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Tag{},
		&models.Comment{}, &models.Rate{}, &models.TransformedImage{}); err != nil {
		logger.Get().Fatal().Err(err).Msg("auto migration failed")
	}

	return db
}
