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

type CreateIncomeRequest struct {
	// Amount is a pointer so that a missing field is rejected while an
	// explicit 0 is still accepted.
	Amount      *float64 `json:"amount" binding:"required"`
	Source      string   `json:"source" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description"`
}

func (h *Handlers) CreateIncome(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	income := &models.Income{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      *req.Amount,
		Source:      req.Source,
		Category:    req.Category,
		Date:        req.Date,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.store.InsertIncome(c.Request.Context(), income); err != nil {
		logger.Get().Error("error creating income", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, income)
}

func (h *Handlers) ListIncomes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	incomes, err := h.store.ListIncomes(c.Request.Context(), userID)
	if err != nil {
		logger.Get().Error("error listing incomes", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, incomes)
}

func (h *Handlers) DeleteIncome(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteIncome(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		logger.Get().Error("error deleting income", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if deleted == 0 {
		respondError(c, http.StatusNotFound, KindNotFound, "Income not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
