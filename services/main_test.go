package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Ambaks/campuseats/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory database per test. The shared cache
// keeps all pooled connections on the same store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Meal{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.ChefOrder{},
		&entity.Review{},
	))
	return db
}

func floatPtr(f float64) *float64 { return &f }

func seedUser(t *testing.T, db *gorm.DB, id, email, username, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		ID: id, Email: email, Username: username,
		FirstName: "Test", LastName: "User", Role: role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedMeal(t *testing.T, db *gorm.DB, sellerID, name string, price float64, lat, lon *float64) *entity.Meal {
	t.Helper()
	m := &entity.Meal{
		Name: name, Ingredients: "test", Price: price,
		Quantity: 10, SellerID: sellerID,
		Latitude: lat, Longitude: lon,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}
