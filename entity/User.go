package entity

import (
	"time"
)

type User struct {
	// Primary key is the identity provider's uid, issued externally and never changed.
	ID        string `gorm:"primaryKey" json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Age       string `json:"age"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`

	ProfilePicture string  `json:"profilePicture"`
	Role           string  `gorm:"not null;default:buyer" json:"role"` // buyer, seller, admin
	PhoneNumber    string  `json:"phoneNumber"`
	Address        string  `json:"address"`
	Rating         float64 `json:"rating"`
	IsVerified     bool    `json:"isVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations; preload only when needed
	Meals           []Meal      `gorm:"foreignKey:SellerID" json:"-"`
	Orders          []Order     `gorm:"foreignKey:BuyerID" json:"-"`
	OrdersReceived  []ChefOrder `gorm:"foreignKey:ChefID" json:"-"`
	Reviews         []Review    `gorm:"foreignKey:ReviewerID" json:"-"`
	ReceivedReviews []Review    `gorm:"foreignKey:ChefID" json:"-"`
}
