package db

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"skystore/internal/models"
)

// MustOpen открывает соединение с БД по строке из .env
func MustOpen() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is empty (check your .env)")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	return db
}

// AutoMigrate накатывает схему для всех таблиц приложения
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Version{}, &models.Blog{},
	)
}
