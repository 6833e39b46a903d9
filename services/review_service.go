package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
	MealRepo  *repository.MealRepository
}

func NewReviewService(repo *repository.ReviewRepository, orderRepo *repository.OrderRepository, mealRepo *repository.MealRepository) *ReviewService {
	return &ReviewService{Repo: repo, OrderRepo: orderRepo, MealRepo: mealRepo}
}

type CreateReviewIn struct {
	OrderID    string `json:"orderId" binding:"required"`
	MealID     uint   `json:"mealId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"reviewText"`
}

// Create allows exactly one review per order, and only by the buyer of a
// completed order.
func (s *ReviewService) Create(reviewerID string, in *CreateReviewIn) (*entity.Review, error) {
	order, err := s.OrderRepo.GetOwnedOrder(in.OrderID, reviewerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: you can only review your own completed orders", ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusCompleted {
		return nil, fmt.Errorf("%w: you can only review completed orders", ErrUnauthorized)
	}

	exists, err := s.Repo.ExistsForOrder(in.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: review already exists for this order", ErrConflict)
	}

	meal, err := s.MealRepo.GetByID(in.MealID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: meal", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rev := &entity.Review{
		ReviewerID: reviewerID,
		ChefID:     meal.SellerID,
		MealID:     meal.ID,
		OrderID:    in.OrderID,
		Rating:     in.Rating,
		ReviewText: in.ReviewText,
	}
	if err := s.Repo.Create(rev); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: review already exists for this order", ErrConflict)
		}
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForMeal(mealID uint) ([]entity.Review, error) {
	return s.Repo.ListByMeal(mealID)
}

func (s *ReviewService) ListForChef(chefID string) ([]entity.Review, error) {
	return s.Repo.ListByChef(chefID)
}

// RatingSummary averages all review ratings for a chef, rounded to one
// decimal. Zero reviews yields {0.0, 0}.
func (s *ReviewService) RatingSummary(chefID string) (*repository.RatingSummary, error) {
	summary, err := s.Repo.AggregateForChef(chefID)
	if err != nil {
		return nil, err
	}
	summary.AverageRating = math.Round(summary.AverageRating*10) / 10
	return summary, nil
}
