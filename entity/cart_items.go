package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	MealID   uint `gorm:"not null" json:"mealId"`
	Quantity int  `gorm:"not null;default:1" json:"quantity"`
}
