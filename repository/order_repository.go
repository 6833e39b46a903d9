package repository

import (
	"errors"

	"github.com/Ambaks/campuseats/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Exists(tx *gorm.DB, orderID string) (bool, error) {
	var count int64
	err := tx.Model(&entity.Order{}).Where("id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateChefOrder(tx *gorm.DB, co *entity.ChefOrder) error {
	return tx.Create(co).Error
}

func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOwnedOrder is the combined lookup-and-check: a miss means either the
// order does not exist or it is not the caller's.
func (r *OrderRepository) GetOwnedOrder(id, buyerID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND buyer_id = ?", id, buyerID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListChefOrdersByChef(chefID string) ([]entity.ChefOrder, error) {
	var orders []entity.ChefOrder
	err := r.DB.Where("chef_id = ?", chefID).
		Preload("Meal").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByBuyer(buyerID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("buyer_id = ?", buyerID).
		Preload("Meals").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetChefOrder(id uint) (*entity.ChefOrder, error) {
	var co entity.ChefOrder
	if err := r.DB.First(&co, id).Error; err != nil {
		return nil, err
	}
	return &co, nil
}

func (r *OrderRepository) UpdateChefOrderStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.ChefOrder{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *OrderRepository) CountOpenChefOrders(tx *gorm.DB, orderID string) (int64, error) {
	var count int64
	err := tx.Model(&entity.ChefOrder{}).
		Where("order_id = ? AND status <> ?", orderID, entity.OrderStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *OrderRepository) UpdateOrderStatus(tx *gorm.DB, orderID, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// IsDuplicateKey reports whether err is the store's unique constraint
// violation. Treated as a benign outcome on webhook redelivery.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
