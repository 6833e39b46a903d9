package services

import (
	"time"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MealRepo *repository.MealRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MealRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MealRepo: mr}
}

type CartItemIn struct {
	MealID   uint `json:"mealId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// EnrichedCartItem joins the persisted line with the live meal snapshot.
type EnrichedCartItem struct {
	MealID   uint        `json:"mealId"`
	Quantity int         `json:"quantity"`
	Meal     entity.Meal `json:"meal"`
}

type FullCart struct {
	UserID string             `json:"userId"`
	Items  []EnrichedCartItem `json:"items"`
}

// Get enriches every line with current listing data. Lines whose meal no
// longer exists are dropped silently.
func (s *CartService) Get(userID string) (*FullCart, error) {
	c, err := s.CartRepo.GetWithItems(userID)
	if err != nil {
		return nil, err
	}
	return s.enrich(c)
}

// Replace swaps the cart's full item list. Items referencing meals that no
// longer exist are dropped, not rejected.
func (s *CartService) Replace(userID string, items []CartItemIn) (*FullCart, error) {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.MealID)
	}
	meals, err := s.MealRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	known := make(map[uint]bool, len(meals))
	for _, m := range meals {
		known[m.ID] = true
	}

	rows := make([]entity.CartItem, 0, len(items))
	for _, it := range items {
		if !known[it.MealID] {
			continue
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		rows = append(rows, entity.CartItem{MealID: it.MealID, Quantity: qty})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}
		return s.CartRepo.ReplaceItems(tx, c.ID, rows)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) RemoveItem(userID string, mealID uint) (*FullCart, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, mealID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) Clear(userID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}

// SweepStale deletes carts untouched for longer than the retention window.
func (s *CartService) SweepStale(retention time.Duration) (int64, error) {
	return s.CartRepo.DeleteStale(time.Now().Add(-retention))
}

func (s *CartService) enrich(c *entity.Cart) (*FullCart, error) {
	out := &FullCart{UserID: c.UserID, Items: []EnrichedCartItem{}}
	if len(c.Items) == 0 {
		return out, nil
	}

	ids := make([]uint, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, it.MealID)
	}
	meals, err := s.MealRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.Meal, len(meals))
	for _, m := range meals {
		byID[m.ID] = m
	}

	for _, it := range c.Items {
		m, ok := byID[it.MealID]
		if !ok {
			continue // meal was deleted since it was added
		}
		out.Items = append(out.Items, EnrichedCartItem{
			MealID:   it.MealID,
			Quantity: it.Quantity,
			Meal:     m,
		})
	}
	return out, nil
}
