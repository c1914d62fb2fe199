package main

import (
	"log"
	"net/http"

	_ "xfood/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"xfood/internal/auth"
	"xfood/internal/cache"
	"xfood/internal/config"
	"xfood/internal/db"
	"xfood/internal/events"
	"xfood/internal/handler"
	"xfood/internal/model"
	"xfood/internal/repository"
	"xfood/internal/router"
	"xfood/internal/seed"
	"xfood/internal/service"
	"xfood/internal/storage"
)

// @title xFood Catalog API
// @version 1.0
// @description Catalog and user management API with categories, products, profile tiers and session based authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	// Prices serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Product{},
			&model.User{},
			&model.Category{},
			&model.TypeUser{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if cfg.SeedDB {
		if err := seed.Ensure(gormDB); err != nil {
			log.Fatalf("seed: %v", err)
		}
	} else if err := gormDB.AutoMigrate(
		&model.TypeUser{},
		&model.Category{},
		&model.Product{},
		&model.User{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("Warning: rabbitmq unavailable, catalog events disabled: %v", err)
		} else {
			publisher = amqpPublisher
			defer amqpPublisher.Close()
		}
	}

	// Repositories
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	typeUserRepo := repository.NewTypeUserRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Session components
	sessionService := auth.NewSessionService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Services
	categoryService := service.NewCategoryService(categoryRepo, cacheClient, publisher)
	productService := service.NewProductService(productRepo, categoryRepo, cacheClient, publisher)
	typeUserService := service.NewTypeUserService(typeUserRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, sessionService, sessionStore)

	imageStore := storage.NewLocalStore(cfg.UploadDir)

	// Handlers
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	productFormHandler := handler.NewProductFormHandler(productService, imageStore)
	typeUserHandler := handler.NewTypeUserHandler(typeUserService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	router.Register(
		e,
		cfg,
		sessionStore,
		categoryHandler,
		productHandler,
		productFormHandler,
		userHandler,
		typeUserHandler,
		authHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
