package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/homechef/marketplace-api/models"
)

// InitDB opens the configured database. MySQL when DB_HOST is set, a local
// SQLite file otherwise so the server runs without external services.
func InitDB() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			host,
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "homechef"),
		)
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		db, err = gorm.Open(sqlite.Open(getEnv("DB_FILE", "homechef.db")), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}
	if err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates or updates the full schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Chef{},
		&models.Consumer{},
		&models.PaymentCard{},
		&models.AuthToken{},
		&models.Category{},
		&models.Dish{},
		&models.DishImage{},
		&models.DishReview{},
		&models.DishVarietySection{},
		&models.DishVarietyOption{},
		&models.Order{},
		&models.OrderItem{},
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
