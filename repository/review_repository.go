package repository

import (
	"github.com/Ambaks/campuseats/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) ListByMeal(mealID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("meal_id = ?", mealID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListByChef(chefID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}

// AggregateForChef returns {0, 0} for a chef with no reviews.
func (r *ReviewRepository) AggregateForChef(chefID string) (*RatingSummary, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	err := r.DB.Model(&entity.Review{}).
		Where("chef_id = ?", chefID).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	s := &RatingSummary{ReviewCount: row.Count}
	if row.Avg != nil {
		s.AverageRating = *row.Avg
	}
	return s, nil
}
