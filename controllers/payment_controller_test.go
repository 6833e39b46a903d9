package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/repository"
	"github.com/Ambaks/campuseats/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ctlDBCounter int64

func setupControllerDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&ctlDBCounter, 1)
	dsn := fmt.Sprintf("file:ctl_test_%d?mode=memory&cache=shared", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Meal{},
		&entity.Order{}, &entity.ChefOrder{},
	))
	return db
}

// stubGateway returns a canned webhook event without touching the provider.
type stubGateway struct {
	event stripe.Event
	err   error
}

func (g *stubGateway) CreateCheckoutSession(_ context.Context, _ *services.CheckoutSessionIn) (string, error) {
	return "cs_stub", nil
}

func (g *stubGateway) ParseWebhook(_ *http.Request) (stripe.Event, error) {
	return g.event, g.err
}

func newWebhookRouter(db *gorm.DB, gw services.PaymentGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewCheckoutService(db, gw,
		repository.NewUserRepository(db),
		repository.NewMealRepository(db),
		repository.NewOrderRepository(db),
		"http://localhost:3000")
	ctl := NewPaymentController(gw, svc)

	r := gin.New()
	r.POST("/webhook/payment", ctl.Webhook)
	return r
}

func TestWebhookRejectsUnsignedPayload(t *testing.T) {
	db := setupControllerDB(t)
	// Real gateway: no Stripe-Signature header means verification fails
	// before the payload is looked at.
	gw := services.NewStripeGateway("sk_test_x", "whsec_test_x")
	r := newWebhookRouter(db, gw)

	body := []byte(`{"type":"checkout.session.completed","data":{"object":{"metadata":{"order_id":"o","buyer_id":"b","total_price":"5.00","meals":"[{\"id\":1}]"}}}}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/payment", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "nothing stored from an unverified payload")
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	db := setupControllerDB(t)
	r := newWebhookRouter(db, &stubGateway{event: stripe.Event{Type: "payment_intent.succeeded"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/payment", bytes.NewReader([]byte(`{}`)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestWebhookCompletedSessionCreatesOrder(t *testing.T) {
	db := setupControllerDB(t)
	require.NoError(t, db.Create(&entity.User{
		ID: "chef-1", Email: "chef@test.dev", Username: "chef1",
		FirstName: "Test", LastName: "Chef", Role: "chef",
	}).Error)
	meal := &entity.Meal{Name: "Pad Thai", Ingredients: "test", Price: 5.50, Quantity: 10, SellerID: "chef-1"}
	require.NoError(t, db.Create(meal).Error)

	raw, err := json.Marshal(map[string]any{
		"metadata": map[string]string{
			"order_id":    "order-wh",
			"buyer_id":    "buyer-1",
			"total_price": "5.50",
			"meals":       fmt.Sprintf(`[{"id":%d,"quantity":1}]`, meal.ID),
		},
	})
	require.NoError(t, err)

	event := stripe.Event{Type: "checkout.session.completed"}
	event.Data = &stripe.EventData{Raw: raw}
	r := newWebhookRouter(db, &stubGateway{event: event})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/payment", bytes.NewReader([]byte(`{}`)))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order entity.Order
	require.NoError(t, db.Where("id = ?", "order-wh").First(&order).Error)
	assert.Equal(t, "buyer-1", order.BuyerID)

	var chefOrders int64
	require.NoError(t, db.Model(&entity.ChefOrder{}).Where("order_id = ?", "order-wh").Count(&chefOrders).Error)
	assert.Equal(t, int64(1), chefOrders)
}
