package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"finance-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BudgetRequest struct {
	Category string `json:"category" binding:"required"`
	// MonthlyLimit is a pointer so that a missing field is rejected while
	// an explicit 0 is still accepted.
	MonthlyLimit *float64 `json:"monthly_limit" binding:"required"`
	Year         int      `json:"year" binding:"required"`
	Month        int      `json:"month" binding:"required,min=1,max=12"`
}

// CreateBudget enforces one budget per (user, category, year, month). The
// existence check and the insert are two round trips, so concurrent
// duplicate creations can race past the check; the unique index created at
// startup catches that case and is reported as the same conflict.
func (h *Handlers) CreateBudget(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	existing, err := h.store.FindBudgetByKey(c.Request.Context(), userID, req.Category, req.Year, req.Month)
	if err != nil {
		logger.Get().Error("error checking for existing budget", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if existing != nil {
		respondError(c, http.StatusConflict, KindConflict, "Budget already exists for this category and month")
		return
	}

	budget := &models.Budget{
		ID:           uuid.NewString(),
		UserID:       userID,
		Category:     req.Category,
		MonthlyLimit: *req.MonthlyLimit,
		Year:         req.Year,
		Month:        req.Month,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.store.InsertBudget(c.Request.Context(), budget); err != nil {
		if errors.Is(err, mongodb.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, KindConflict, "Budget already exists for this category and month")
			return
		}
		logger.Get().Error("error creating budget", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// ListBudgets optionally narrows by ?year= and ?month=. Unparsable values
// are treated as absent rather than rejected.
func (h *Handlers) ListBudgets(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))

	budgets, err := h.store.ListBudgets(c.Request.Context(), userID, year, month)
	if err != nil {
		logger.Get().Error("error listing budgets", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// UpdateBudget replaces category, limit, year and month in full; id, owner
// and creation time never change.
func (h *Handlers) UpdateBudget(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	id := c.Param("id")
	patch := &models.Budget{
		Category:     req.Category,
		MonthlyLimit: *req.MonthlyLimit,
		Year:         req.Year,
		Month:        req.Month,
	}

	matched, err := h.store.UpdateBudget(c.Request.Context(), id, userID, patch)
	if err != nil {
		if errors.Is(err, mongodb.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, KindConflict, "Budget already exists for this category and month")
			return
		}
		logger.Get().Error("error updating budget", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if matched == 0 {
		respondError(c, http.StatusNotFound, KindNotFound, "Budget not found")
		return
	}

	updated, err := h.store.FindBudgetByID(c.Request.Context(), id, userID)
	if err != nil {
		logger.Get().Error("error re-fetching budget", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if updated == nil {
		respondError(c, http.StatusNotFound, KindNotFound, "Budget not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handlers) DeleteBudget(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteBudget(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		logger.Get().Error("error deleting budget", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if deleted == 0 {
		respondError(c, http.StatusNotFound, KindNotFound, "Budget not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
