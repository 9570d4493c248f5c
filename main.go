package main

import (
	"context"
	"log"
	"time"

	"finance-tracker/api/auth"
	"finance-tracker/api/config"
	"finance-tracker/api/handlers"
	"finance-tracker/api/logger"
	"finance-tracker/api/middleware"
	"finance-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logger.Init(cfg.Development, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Get().Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Get().Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Get().Fatal("failed to create indexes", zap.Error(err))
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)
	h := handlers.New(store, tokens)

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	router.Use(middleware.CORS(cfg.CORSOrigins))

	registerRoutes(router, h, tokens)

	logger.Get().Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}

func registerRoutes(router *gin.Engine, h *handlers.Handlers, tokens *auth.TokenService) {
	api := router.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/contact", h.SubmitContact)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.Auth(tokens))
	{
		protected.GET("/auth/me", h.Me)

		protected.POST("/incomes", h.CreateIncome)
		protected.GET("/incomes", h.ListIncomes)
		protected.DELETE("/incomes/:id", h.DeleteIncome)

		protected.POST("/expenses", h.CreateExpense)
		protected.GET("/expenses", h.ListExpenses)
		protected.DELETE("/expenses/:id", h.DeleteExpense)

		protected.POST("/budgets", h.CreateBudget)
		protected.GET("/budgets", h.ListBudgets)
		protected.PUT("/budgets/:id", h.UpdateBudget)
		protected.DELETE("/budgets/:id", h.DeleteBudget)

		protected.POST("/savings-goals", h.CreateSavingsGoal)
		protected.GET("/savings-goals", h.ListSavingsGoals)
		protected.PUT("/savings-goals/:id", h.UpdateSavingsGoal)
		protected.DELETE("/savings-goals/:id", h.DeleteSavingsGoal)

		protected.GET("/dashboard/stats", h.DashboardStats)
	}
}
