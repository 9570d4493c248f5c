package handlers

import (
	"context"
	"net/http"

	"finance-tracker/api/auth"
	"finance-tracker/api/logger"
	"finance-tracker/api/middleware"
	"finance-tracker/api/models"

	"github.com/gin-gonic/gin"
)

// Error kinds surfaced to clients alongside the human-readable message.
const (
	KindValidationError     = "validation_error"
	KindUnauthorized        = "unauthorized"
	KindInvalidCredentials  = "invalid_credentials"
	KindNotFound            = "not_found"
	KindConflict            = "conflict"
	KindUpstreamUnavailable = "upstream_unavailable"
	KindInternalError       = "internal_error"
)

// Store is what the handlers need from the record store. The mongodb
// package provides the production implementation; tests substitute an
// in-memory one.
type Store interface {
	InsertUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)

	InsertIncome(ctx context.Context, income *models.Income) error
	ListIncomes(ctx context.Context, userID string) ([]models.Income, error)
	DeleteIncome(ctx context.Context, id, userID string) (int64, error)

	InsertExpense(ctx context.Context, expense *models.Expense) error
	ListExpenses(ctx context.Context, userID string) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, id, userID string) (int64, error)

	InsertBudget(ctx context.Context, budget *models.Budget) error
	FindBudgetByKey(ctx context.Context, userID, category string, year, month int) (*models.Budget, error)
	FindBudgetByID(ctx context.Context, id, userID string) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID string, year, month int) ([]models.Budget, error)
	UpdateBudget(ctx context.Context, id, userID string, budget *models.Budget) (int64, error)
	DeleteBudget(ctx context.Context, id, userID string) (int64, error)

	InsertSavingsGoal(ctx context.Context, goal *models.SavingsGoal) error
	ListSavingsGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error)
	FindSavingsGoalByID(ctx context.Context, id, userID string) (*models.SavingsGoal, error)
	UpdateSavingsGoalAmount(ctx context.Context, id, userID string, currentAmount float64) (int64, error)
	DeleteSavingsGoal(ctx context.Context, id, userID string) (int64, error)

	InsertContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// Handlers holds the dependencies shared by every route handler.
type Handlers struct {
	store  Store
	tokens *auth.TokenService
}

func New(store Store, tokens *auth.TokenService) *Handlers {
	return &Handlers{store: store, tokens: tokens}
}

// currentUser returns the authenticated user id put in the context by the
// auth middleware. A missing id means the route was wired without the
// middleware; the request is rejected.
func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		logger.Get().Error("request reached a protected handler without an authenticated user")
		respondError(c, http.StatusUnauthorized, KindUnauthorized, "User not authenticated")
		return "", false
	}
	return userID, true
}

func respondError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"kind": kind, "error": message})
}

// respondStoreError maps any store failure to a generic upstream failure.
// Store errors are never retried here.
func respondStoreError(c *gin.Context, err error) {
	respondError(c, http.StatusBadGateway, KindUpstreamUnavailable, err.Error())
}
