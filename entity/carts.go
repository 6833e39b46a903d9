package entity

import (
	"gorm.io/gorm"
)

// Cart holds only meal ids and quantities; meal snapshots are joined in at
// read time, never stored here.
type Cart struct {
	gorm.Model
	UserID string `gorm:"uniqueIndex;not null" json:"userId"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
