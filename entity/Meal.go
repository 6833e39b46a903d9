package entity

import (
	"gorm.io/gorm"
)

type Meal struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Ingredients string  `json:"ingredients"`
	Price       float64 `json:"price"`

	// Quantity is ignored when Unlimited is set.
	Quantity  int  `json:"quantity"`
	Unlimited bool `json:"unlimited"`

	// Nil coordinates keep the meal out of nearby queries.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Timeslots Timeslots `gorm:"type:json" json:"timeslots"`

	ImageURL string `json:"imageUrl"`

	// --- BLOB image ---
	Image     []byte `json:"-"`
	ImageType string `json:"-"` // e.g. "image/jpeg"
	ImageSize int64  `json:"-"`

	SellerID string `gorm:"index;not null" json:"sellerId"`
	Seller   User   `json:"-"` // preload when needed

	Reviews []Review `gorm:"foreignKey:MealID" json:"-"`
	Orders  []Order  `gorm:"many2many:order_meals;" json:"-"`
}
