package config

import (
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-order-api/models"
)

var DB *gorm.DB

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	path := getEnv("DATABASE_PATH", "food_order.db")
	DB, err = gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Inventory{},
		&models.Category{},
		&models.Asset{},
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// S3Bucket is the bucket the asset registrar uploads into.
func S3Bucket() string {
	return getEnv("S3_BUCKET_NAME", "food-order-assets")
}

// S3BaseURL is the public prefix assets are served from.
func S3BaseURL() string {
	return fmt.Sprintf("https://%s.s3.us-east-1.amazonaws.com", S3Bucket())
}
