package configs

import (
	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/pkg/logger"
)

func ptr(f float64) *float64 { return &f }

// SeedDemoData inserts a couple of sellers and meals for local development.
// Guarded by SEED_DEMO; safe to run repeatedly.
func SeedDemoData() error {
	db := DB()

	sellers := []entity.User{
		{
			ID: "seed-chef-maria", Email: "maria@campus.edu", Username: "maria",
			FirstName: "Maria", LastName: "Lopez", Role: "seller",
		},
		{
			ID: "seed-chef-devon", Email: "devon@campus.edu", Username: "devon",
			FirstName: "Devon", LastName: "Price", Role: "seller",
		},
	}
	for i := range sellers {
		if err := db.FirstOrCreate(&sellers[i], entity.User{ID: sellers[i].ID}).Error; err != nil {
			return err
		}
	}

	meals := []entity.Meal{
		{
			Name: "Chicken Tinga Tacos", Description: "Three tacos with slow-cooked chicken",
			Ingredients: "chicken, chipotle, tortilla, onion", Price: 8.50, Quantity: 12,
			Latitude: ptr(36.7421), Longitude: ptr(-84.1655), SellerID: sellers[0].ID,
			Timeslots: entity.Timeslots{{Start: "11:30", End: "13:30"}},
		},
		{
			Name: "Veggie Ramen", Description: "Miso broth, seasonal vegetables",
			Ingredients: "noodles, miso, mushroom, scallion", Price: 10.00, Unlimited: true,
			Latitude: ptr(36.7389), Longitude: ptr(-84.1612), SellerID: sellers[1].ID,
			Timeslots: entity.Timeslots{{Start: "17:00", End: "20:00"}},
		},
	}
	for i := range meals {
		var count int64
		db.Model(&entity.Meal{}).
			Where("name = ? AND seller_id = ?", meals[i].Name, meals[i].SellerID).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&meals[i]).Error; err != nil {
			return err
		}
	}

	logger.L().Info("demo data seeded")
	return nil
}
