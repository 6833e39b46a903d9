package entity

import (
	"gorm.io/gorm"
)

// ChefOrder is the seller-scoped slice of an order: one row per meal at
// fan-out time, keyed uniquely by (order, meal).
type ChefOrder struct {
	gorm.Model
	OrderID string `gorm:"uniqueIndex:idx_chef_order_meal;not null" json:"orderId"`
	BuyerID string `gorm:"index;not null" json:"buyerId"`
	MealID  uint   `gorm:"uniqueIndex:idx_chef_order_meal;not null" json:"mealId"`
	ChefID  string `gorm:"index;not null" json:"chefId"`
	Status  string `gorm:"not null;default:pending" json:"status"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
	Meal  Meal  `json:"meal"`
	Chef  User  `gorm:"foreignKey:ChefID" json:"-"`
}
