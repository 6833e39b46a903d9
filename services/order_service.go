package services

import (
	"errors"
	"fmt"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ListForChef returns the seller's incoming sub-orders, newest first.
func (s *OrderService) ListForChef(chefID string) ([]entity.ChefOrder, error) {
	return s.Repo.ListChefOrdersByChef(chefID)
}

func (s *OrderService) ListForBuyer(buyerID string) ([]entity.Order, error) {
	return s.Repo.ListByBuyer(buyerID)
}

// UpdateChefOrderStatus lets the owning chef move a sub-order between
// pending, completed and canceled. Completing the last open sub-order of
// an order marks the whole order completed, which unlocks reviews.
func (s *OrderService) UpdateChefOrderStatus(chefID string, chefOrderID uint, status string) (*entity.ChefOrder, error) {
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusCompleted, entity.OrderStatusCanceled:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	co, err := s.Repo.GetChefOrder(chefOrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: chef order", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if co.ChefID != chefID {
		return nil, fmt.Errorf("%w: chef order", ErrNotFound)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateChefOrderStatus(tx, chefOrderID, status); err != nil {
			return err
		}
		if status != entity.OrderStatusCompleted {
			return nil
		}
		open, err := s.Repo.CountOpenChefOrders(tx, co.OrderID)
		if err != nil {
			return err
		}
		if open == 0 {
			return s.Repo.UpdateOrderStatus(tx, co.OrderID, entity.OrderStatusCompleted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	co.Status = status
	return co, nil
}
