package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Ambaks/campuseats/auth"
	"github.com/Ambaks/campuseats/configs"
	"github.com/Ambaks/campuseats/middlewares"
	"github.com/Ambaks/campuseats/pkg/logger"
	"github.com/Ambaks/campuseats/routes"
	"github.com/Ambaks/campuseats/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const cartSweepInterval = 24 * time.Hour

func main() {
	cfg := configs.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	// DB
	if err := configs.ConnectionDB(cfg.DBDsn); err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}

	if cfg.SeedDemo {
		if err := configs.SeedDemoData(); err != nil {
			logger.L().Fatal("seed demo data failed", zap.Error(err))
		}
	}

	// Identity verifier: Firebase in normal operation, local HMAC tokens
	// when no credentials are configured (development only).
	var verifier auth.Verifier
	if cfg.FirebaseCredentials != "" {
		fv, err := auth.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentials)
		if err != nil {
			logger.L().Fatal("failed to init identity verifier", zap.Error(err))
		}
		verifier = fv
	} else {
		logger.L().Warn("FIREBASE_CREDENTIALS not set, using dev HMAC verifier")
		verifier = auth.NewHMACVerifier(cfg.AuthDevSecret)
	}

	gateway := services.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	// HTTP
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))

	cartSvc := routes.RegisterRoutes(r, db, cfg, verifier, gateway)

	// Best-effort stale cart sweep; harmless next to live traffic.
	go sweepCarts(cartSvc, cfg.CartRetention)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L().Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func sweepCarts(cartSvc *services.CartService, retention time.Duration) {
	ticker := time.NewTicker(cartSweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		n, err := cartSvc.SweepStale(retention)
		if err != nil {
			logger.L().Warn("stale cart sweep failed", zap.Error(err))
			continue
		}
		if n > 0 {
			logger.L().Info("stale carts removed", zap.Int64("count", n))
		}
	}
}
