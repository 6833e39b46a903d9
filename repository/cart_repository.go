package repository

import (
	"errors"
	"time"

	"github.com/Ambaks/campuseats/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetWithItems returns the user's cart, or an empty cart value when none
// exists so callers never see a not-found error for a missing cart.
func (r *CartRepository) GetWithItems(userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ReplaceItems swaps the cart's full line set. Runs inside the caller's
// transaction so the replacement is atomic.
func (r *CartRepository) ReplaceItems(tx *gorm.DB, cartID uint, items []entity.CartItem) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].CartID = cartID
	}
	if len(items) == 0 {
		return nil
	}
	if err := tx.Create(&items).Error; err != nil {
		return err
	}
	// Bump updated_at so the stale sweep sees activity.
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID string, mealID uint) error {
	return tx.
		Where("meal_id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", mealID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID string) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}

// DeleteStale removes carts untouched since the cutoff. Best effort; items
// go with them via the cascade constraint.
func (r *CartRepository) DeleteStale(cutoff time.Time) (int64, error) {
	var stale []entity.Cart
	if err := r.DB.Where("updated_at < ?", cutoff).Find(&stale).Error; err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}
	ids := make([]uint, 0, len(stale))
	for _, c := range stale {
		ids = append(ids, c.ID)
	}
	// Hard delete: a soft-deleted row would keep holding the user's
	// unique cart slot.
	if err := r.DB.Unscoped().Where("cart_id IN ?", ids).Delete(&entity.CartItem{}).Error; err != nil {
		return 0, err
	}
	res := r.DB.Unscoped().Where("id IN ?", ids).Delete(&entity.Cart{})
	return res.RowsAffected, res.Error
}
