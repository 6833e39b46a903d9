package services

import (
	"testing"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrderWithSubOrders(t *testing.T, db *gorm.DB, orderID, buyerID string, meals []*entity.Meal) []entity.ChefOrder {
	t.Helper()
	var total float64
	for _, m := range meals {
		total += m.Price
	}
	require.NoError(t, db.Create(&entity.Order{
		ID: orderID, BuyerID: buyerID,
		TotalPrice: total, Status: entity.OrderStatusPending,
	}).Error)

	out := make([]entity.ChefOrder, 0, len(meals))
	for _, m := range meals {
		co := entity.ChefOrder{
			OrderID: orderID, BuyerID: buyerID,
			MealID: m.ID, ChefID: m.SellerID,
			Status: entity.OrderStatusPending,
		}
		require.NoError(t, db.Create(&co).Error)
		out = append(out, co)
	}
	return out
}

func TestUpdateChefOrderStatusValidatesStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))

	_, err := svc.UpdateChefOrderStatus("chef-1", 1, "shipped")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateChefOrderStatusHidesOthersOrders(t *testing.T) {
	db := setupTestDB(t)
	chef := seedUser(t, db, "chef-1", "chef@test.dev", "chef1", "chef")
	buyer := seedUser(t, db, "buyer-1", "buyer@test.dev", "buyer1", "buyer")
	m := seedMeal(t, db, chef.ID, "Pad Thai", 5.50, nil, nil)
	cos := seedOrderWithSubOrders(t, db, "order-1", buyer.ID, []*entity.Meal{m})

	svc := NewOrderService(db, repository.NewOrderRepository(db))

	_, err := svc.UpdateChefOrderStatus("someone-else", cos[0].ID, entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateChefOrderStatus(chef.ID, 9999, entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompletingLastSubOrderCompletesOrder(t *testing.T) {
	db := setupTestDB(t)
	chef1 := seedUser(t, db, "chef-1", "chef1@test.dev", "chef1", "chef")
	chef2 := seedUser(t, db, "chef-2", "chef2@test.dev", "chef2", "chef")
	buyer := seedUser(t, db, "buyer-1", "buyer@test.dev", "buyer1", "buyer")
	m1 := seedMeal(t, db, chef1.ID, "Pad Thai", 5.50, nil, nil)
	m2 := seedMeal(t, db, chef2.ID, "Green Curry", 3.25, nil, nil)
	cos := seedOrderWithSubOrders(t, db, "order-1", buyer.ID, []*entity.Meal{m1, m2})

	svc := NewOrderService(db, repository.NewOrderRepository(db))

	co, err := svc.UpdateChefOrderStatus(chef1.ID, cos[0].ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, co.Status)

	var order entity.Order
	require.NoError(t, db.Where("id = ?", "order-1").First(&order).Error)
	assert.Equal(t, entity.OrderStatusPending, order.Status, "one sub-order still open")

	_, err = svc.UpdateChefOrderStatus(chef2.ID, cos[1].ID, entity.OrderStatusCompleted)
	require.NoError(t, err)

	require.NoError(t, db.Where("id = ?", "order-1").First(&order).Error)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestCancelingSubOrderLeavesOrderPending(t *testing.T) {
	db := setupTestDB(t)
	chef := seedUser(t, db, "chef-1", "chef@test.dev", "chef1", "chef")
	buyer := seedUser(t, db, "buyer-1", "buyer@test.dev", "buyer1", "buyer")
	m := seedMeal(t, db, chef.ID, "Pad Thai", 5.50, nil, nil)
	cos := seedOrderWithSubOrders(t, db, "order-1", buyer.ID, []*entity.Meal{m})

	svc := NewOrderService(db, repository.NewOrderRepository(db))
	_, err := svc.UpdateChefOrderStatus(chef.ID, cos[0].ID, entity.OrderStatusCanceled)
	require.NoError(t, err)

	var order entity.Order
	require.NoError(t, db.Where("id = ?", "order-1").First(&order).Error)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestListForChefNewestFirstWithMeal(t *testing.T) {
	db := setupTestDB(t)
	chef := seedUser(t, db, "chef-1", "chef@test.dev", "chef1", "chef")
	other := seedUser(t, db, "chef-2", "chef2@test.dev", "chef2", "chef")
	buyer := seedUser(t, db, "buyer-1", "buyer@test.dev", "buyer1", "buyer")
	m1 := seedMeal(t, db, chef.ID, "Pad Thai", 5.50, nil, nil)
	m2 := seedMeal(t, db, other.ID, "Green Curry", 3.25, nil, nil)
	seedOrderWithSubOrders(t, db, "order-1", buyer.ID, []*entity.Meal{m1, m2})

	svc := NewOrderService(db, repository.NewOrderRepository(db))
	orders, err := svc.ListForChef(chef.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, m1.ID, orders[0].MealID)
	assert.Equal(t, "Pad Thai", orders[0].Meal.Name)
}

func TestListForBuyerPreloadsMeals(t *testing.T) {
	db := setupTestDB(t)
	chef := seedUser(t, db, "chef-1", "chef@test.dev", "chef1", "chef")
	buyer := seedUser(t, db, "buyer-1", "buyer@test.dev", "buyer1", "buyer")
	m := seedMeal(t, db, chef.ID, "Pad Thai", 5.50, nil, nil)
	seedOrderWithSubOrders(t, db, "order-1", buyer.ID, []*entity.Meal{m})
	require.NoError(t, db.Model(&entity.Order{ID: "order-1"}).Association("Meals").Append(m))

	svc := NewOrderService(db, repository.NewOrderRepository(db))
	orders, err := svc.ListForBuyer(buyer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Meals, 1)
	assert.Equal(t, "Pad Thai", orders[0].Meals[0].Name)

	orders, err = svc.ListForBuyer("someone-else")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
