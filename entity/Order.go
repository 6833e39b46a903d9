package entity

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

type Order struct {
	// Pre-generated before the payment step; the primary key doubles as
	// the idempotency key for webhook delivery.
	ID         string  `gorm:"primaryKey" json:"id"`
	BuyerID    string  `gorm:"index;not null" json:"buyerId"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `gorm:"not null;default:pending" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Buyer User `gorm:"foreignKey:BuyerID" json:"-"`

	Meals      []Meal      `gorm:"many2many:order_meals;" json:"-"`
	ChefOrders []ChefOrder `gorm:"foreignKey:OrderID" json:"-"`
}
