package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	ReviewerID string `gorm:"index;not null" json:"reviewerId"`
	ChefID     string `gorm:"index;not null" json:"chefId"`
	MealID     uint   `gorm:"index" json:"mealId"`

	// One review per order.
	OrderID string `gorm:"uniqueIndex;not null" json:"orderId"`

	Rating     int    `gorm:"not null" json:"rating"`
	ReviewText string `gorm:"type:text" json:"reviewText"`

	Reviewer User  `gorm:"foreignKey:ReviewerID" json:"-"`
	Chef     User  `gorm:"foreignKey:ChefID" json:"-"`
	Meal     Meal  `json:"-"`
	Order    Order `gorm:"foreignKey:OrderID" json:"-"`
}
