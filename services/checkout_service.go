package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/pkg/logger"
	"github.com/Ambaks/campuseats/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Provider calls get a bounded timeout; a timed-out session creation is a
// failure the client retries, never the server.
const gatewayTimeout = 10 * time.Second

type CheckoutService struct {
	DB        *gorm.DB
	Gateway   PaymentGateway
	UserRepo  *repository.UserRepository
	MealRepo  *repository.MealRepository
	OrderRepo *repository.OrderRepository

	FrontendBaseURL string
}

func NewCheckoutService(
	db *gorm.DB,
	gateway PaymentGateway,
	userRepo *repository.UserRepository,
	mealRepo *repository.MealRepository,
	orderRepo *repository.OrderRepository,
	frontendBaseURL string,
) *CheckoutService {
	return &CheckoutService{
		DB:              db,
		Gateway:         gateway,
		UserRepo:        userRepo,
		MealRepo:        mealRepo,
		OrderRepo:       orderRepo,
		FrontendBaseURL: frontendBaseURL,
	}
}

type CheckoutItemIn struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type CreateSessionIn struct {
	Email string           `json:"email" binding:"required,email"`
	Meals []CheckoutItemIn `json:"meals" binding:"required"`
}

type CreateSessionOut struct {
	SessionID string `json:"sessionId"`
	OrderID   string `json:"orderId"`
}

// CreateSession opens a hosted checkout for the submitted line items. The
// order id is generated here, before any payment step, and travels to the
// provider as metadata; no Order row exists until the provider confirms.
// The total is recomputed from live listing prices, never taken from the
// client.
func (s *CheckoutService) CreateSession(ctx context.Context, in *CreateSessionIn) (*CreateSessionOut, error) {
	if len(in.Meals) == 0 {
		return nil, fmt.Errorf("%w: no meals in checkout", ErrValidation)
	}

	buyer, err := s.resolveBuyer(in.Email)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(in.Meals))
	qty := make(map[uint]int, len(in.Meals))
	for _, it := range in.Meals {
		ids = append(ids, it.ID)
		q := it.Quantity
		if q <= 0 {
			q = 1
		}
		qty[it.ID] = q
	}
	meals, err := s.MealRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(meals) != len(qty) {
		return nil, fmt.Errorf("%w: some meals no longer exist", ErrValidation)
	}

	var total float64
	for _, m := range meals {
		total += m.Price * float64(qty[m.ID])
	}

	orderID := uuid.NewString()

	mealsMeta, err := json.Marshal(in.Meals)
	if err != nil {
		return nil, err
	}

	gctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	sessionID, err := s.Gateway.CreateCheckoutSession(gctx, &CheckoutSessionIn{
		CustomerEmail: in.Email,
		ProductName:   fmt.Sprintf("CampusEats order (%d meals)", len(meals)),
		AmountCents:   int64(total*100 + 0.5),
		SuccessURL:    s.FrontendBaseURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.FrontendBaseURL,
		Metadata: map[string]string{
			"order_id":    orderID,
			"buyer_id":    buyer.ID,
			"total_price": strconv.FormatFloat(total, 'f', 2, 64),
			"meals":       string(mealsMeta),
		},
	})
	if err != nil {
		logger.L().Error("checkout session creation failed",
			zap.String("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("%w: payment provider: %v", ErrUpstream, err)
	}

	return &CreateSessionOut{SessionID: sessionID, OrderID: orderID}, nil
}

// HandleCompletedSession materializes the order from a verified
// payment-completed callback: one Order row plus one ChefOrder per meal,
// atomically. Redelivery of the same callback is a benign no-op keyed on
// the pre-generated order id.
func (s *CheckoutService) HandleCompletedSession(metadata map[string]string) error {
	orderID := metadata["order_id"]
	buyerID := metadata["buyer_id"]
	if orderID == "" || buyerID == "" {
		return fmt.Errorf("%w: missing order metadata", ErrValidation)
	}
	totalPrice, err := strconv.ParseFloat(metadata["total_price"], 64)
	if err != nil {
		return fmt.Errorf("%w: bad total_price in metadata", ErrValidation)
	}

	var items []CheckoutItemIn
	if err := json.Unmarshal([]byte(metadata["meals"]), &items); err != nil {
		return fmt.Errorf("%w: bad meals metadata: %v", ErrValidation, err)
	}
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	meals, err := s.MealRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	if len(meals) == 0 {
		return fmt.Errorf("%w: no meals resolved for order %s", ErrValidation, orderID)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := s.OrderRepo.Exists(tx, orderID)
		if err != nil {
			return err
		}
		if exists {
			logger.L().Info("duplicate payment callback ignored", zap.String("order_id", orderID))
			return nil
		}

		order := &entity.Order{
			ID:         orderID,
			BuyerID:    buyerID,
			TotalPrice: totalPrice,
			Status:     entity.OrderStatusPending,
		}
		if err := s.OrderRepo.Create(tx, order); err != nil {
			return err
		}
		if err := tx.Model(order).Association("Meals").Append(&meals); err != nil {
			return err
		}

		for _, m := range meals {
			co := &entity.ChefOrder{
				OrderID: orderID,
				BuyerID: buyerID,
				MealID:  m.ID,
				ChefID:  m.SellerID,
				Status:  entity.OrderStatusPending,
			}
			if err := s.OrderRepo.CreateChefOrder(tx, co); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// A concurrent delivery can slip past the exists check; the unique
		// order id makes the loser's failure benign.
		if repository.IsDuplicateKey(err) || isDuplicateKeyMessage(err) {
			logger.L().Info("duplicate payment callback race ignored", zap.String("order_id", orderID))
			return nil
		}
		logger.L().Error("order fan-out failed", zap.String("order_id", orderID), zap.Error(err))
		return err
	}
	return nil
}

// resolveBuyer returns the existing user for the contact email or lazily
// creates a minimal buyer record.
func (s *CheckoutService) resolveBuyer(email string) (*entity.User, error) {
	u, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}
	u = &entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		Username:  strings.SplitN(email, "@", 2)[0],
		FirstName: "New",
		LastName:  "User",
		Role:      "buyer",
	}
	if err := s.UserRepo.Create(u); err != nil {
		if repository.IsDuplicateKey(err) {
			return s.UserRepo.GetByEmail(email)
		}
		return nil, err
	}
	return u, nil
}

func isDuplicateKeyMessage(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
