package handlers

import (
	"net/http"
	"time"

	"finance-tracker/api/logger"
	"finance-tracker/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateExpenseRequest struct {
	// Amount is a pointer so that a missing field is rejected while an
	// explicit 0 is still accepted.
	Amount      *float64 `json:"amount" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description"`
}

func (h *Handlers) CreateExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	expense := &models.Expense{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      *req.Amount,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.store.InsertExpense(c.Request.Context(), expense); err != nil {
		logger.Get().Error("error creating expense", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *Handlers) ListExpenses(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	expenses, err := h.store.ListExpenses(c.Request.Context(), userID)
	if err != nil {
		logger.Get().Error("error listing expenses", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func (h *Handlers) DeleteExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteExpense(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		logger.Get().Error("error deleting expense", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if deleted == 0 {
		respondError(c, http.StatusNotFound, KindNotFound, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
