package configs

import (
	"github.com/Ambaks/campuseats/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) error {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Meal{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.ChefOrder{},
		&entity.Review{},
	)
}
