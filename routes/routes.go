package routes

import (
	"github.com/Ambaks/campuseats/auth"
	"github.com/Ambaks/campuseats/configs"
	"github.com/Ambaks/campuseats/controllers"
	"github.com/Ambaks/campuseats/middlewares"
	"github.com/Ambaks/campuseats/repository"
	"github.com/Ambaks/campuseats/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, verifier auth.Verifier, gateway services.PaymentGateway) *services.CartService {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	userSvc := services.NewUserService(userRepo)
	mealSvc := services.NewMealService(mealRepo)
	cartSvc := services.NewCartService(db, cartRepo, mealRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo, mealRepo)
	checkoutSvc := services.NewCheckoutService(db, gateway, userRepo, mealRepo, orderRepo, cfg.FrontendBaseURL)

	// Controllers
	userCtrl := controllers.NewUserController(userSvc)
	mealCtrl := controllers.NewMealController(mealSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	paymentCtrl := controllers.NewPaymentController(gateway, checkoutSvc)

	authed := middlewares.AuthMiddleware(verifier)

	// Users
	r.POST("/users", authed, userCtrl.Create)
	r.GET("/users/:id", userCtrl.Get)
	r.PUT("/users/:id", authed, userCtrl.Update)
	r.GET("/check-username", userCtrl.CheckUsername)

	// Meals
	r.POST("/meals", authed, mealCtrl.Create)
	r.GET("/meals", mealCtrl.Nearby)
	r.GET("/meals/:id", mealCtrl.Get)
	r.GET("/meals/:id/image", mealCtrl.GetImage)
	r.GET("/meals/chef/:sellerId", mealCtrl.ListBySeller)
	r.PUT("/meals/:id", authed, mealCtrl.Update)
	r.DELETE("/meals/:id", authed, mealCtrl.Delete)

	// Cart
	r.GET("/cart/:userId", authed, cartCtrl.Get)
	r.POST("/cart/:userId", authed, cartCtrl.Replace)
	r.DELETE("/cart/:userId/:mealId", authed, cartCtrl.RemoveItem)
	r.POST("/clear-cart", authed, cartCtrl.Clear)

	// Orders
	r.GET("/orders/:userId", authed, orderCtrl.ListForChef)
	r.GET("/orders/buyer/:userId", authed, orderCtrl.ListForBuyer)
	r.PATCH("/orders/chef/:id/status", authed, orderCtrl.UpdateChefOrderStatus)

	// Reviews
	r.POST("/reviews", authed, reviewCtrl.Create)
	r.GET("/meal/:id/reviews", reviewCtrl.ListForMeal)
	r.GET("/chef/:id/reviews", reviewCtrl.ListForChef)
	r.GET("/chef/:id/rating-summary", reviewCtrl.RatingSummary)

	// Checkout
	r.POST("/checkout-session", paymentCtrl.CreateCheckoutSession)
	r.POST("/webhook/payment", paymentCtrl.Webhook)

	return cartSvc
}
