package main

import (
	"log"
	"net/http"
	"os"

	_ "kotconnect/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kotconnect/internal/auth"
	"kotconnect/internal/cache"
	"kotconnect/internal/config"
	"kotconnect/internal/db"
	"kotconnect/internal/handler"
	"kotconnect/internal/model"
	"kotconnect/internal/repository"
	"kotconnect/internal/router"
	"kotconnect/internal/service"
)

// @title KotConnect API
// @version 1.0
// @description Household management API with dorm memberships, tasks, events, shared expenses, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.ExpenseShare{},
			&model.Expense{},
			&model.Event{},
			&model.Task{},
			&model.Dorm{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Dorm{},
		&model.Task{},
		&model.Event{},
		&model.Expense{},
		&model.ExpenseShare{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	dormRepo := repository.NewDormRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	dormService := service.NewDormService(dormRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo, dormService)
	eventService := service.NewEventService(eventRepo, dormService)
	expenseService := service.NewExpenseService(expenseRepo, dormService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	dormHandler := handler.NewDormHandler(dormService, userService)
	taskHandler := handler.NewTaskHandler(taskService, userService)
	eventHandler := handler.NewEventHandler(eventService, userService)
	expenseHandler := handler.NewExpenseHandler(expenseService, userService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		dormHandler,
		taskHandler,
		eventHandler,
		expenseHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
