package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/stockroom/inventory-service/app"
	"github.com/stockroom/inventory-service/app/categories"
	"github.com/stockroom/inventory-service/app/dashboard"
	"github.com/stockroom/inventory-service/app/products"
	"github.com/stockroom/inventory-service/config"
	"github.com/stockroom/inventory-service/database"
	"github.com/stockroom/inventory-service/models"
)

func main() {
	// .env is for local development; deployed secrets come from the process
	// environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("store connection", zap.Error(err))
	}

	categoriesRepo := models.NewCategoriesRepository(db)
	productsRepo := models.NewProductsRepository(db)

	router := app.NewRouter(
		categories.NewCategoryHandler(categoriesRepo, logger),
		products.NewProductHandler(productsRepo, logger),
		dashboard.NewDashboardHandler(productsRepo, logger),
		logger,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
