package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/auth"
	"github.com/hassandev/storefront-api/config"
	orderControllers "github.com/hassandev/storefront-api/controllers/order"
	"github.com/hassandev/storefront-api/middleware"
	"github.com/hassandev/storefront-api/repository"
	"github.com/hassandev/storefront-api/routes"
	"github.com/hassandev/storefront-api/store"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	sugar.Infow("starting storefront", "store_path", cfg.StorePath)

	// Open the local blob store
	kv, err := store.OpenSQLite(cfg.StorePath)
	if err != nil {
		sugar.Fatalw("failed to open store", "error", err)
	}
	defer kv.Close()

	// Seed the catalog on first run
	if err := repository.SeedSampleCatalog(kv); err != nil {
		sugar.Fatalw("failed to seed catalog", "error", err)
	}

	deps := buildDeps(cfg, kv, sugar)

	// Gin setup
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)

	sugar.Infow("server running", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatalw("failed to start server", "error", err)
	}
}

func buildDeps(cfg config.Config, kv store.Store, sugar *zap.SugaredLogger) routes.Deps {
	users := repository.NewUserRepo(kv)
	sessions := repository.NewSessionRepo(kv)

	return routes.Deps{
		Config:    cfg,
		Log:       sugar,
		Auth:      auth.NewManager(sessions, users, cfg),
		Users:     users,
		Products:  repository.NewProductRepo(kv),
		Carts:     repository.NewCartRepo(kv),
		Wishlists: repository.NewWishlistRepo(kv),
		Orders:    repository.NewOrderRepo(kv),
		Messages:  repository.NewContactRepo(kv),
		OrderHub:  orderControllers.NewHub(),
	}
}
