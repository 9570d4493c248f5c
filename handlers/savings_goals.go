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

type CreateSavingsGoalRequest struct {
	Title string `json:"title" binding:"required"`
	// TargetAmount is a pointer so that a missing field is rejected while
	// an explicit 0 is still accepted. CurrentAmount defaults to 0 when
	// omitted.
	TargetAmount  *float64 `json:"target_amount" binding:"required"`
	CurrentAmount float64  `json:"current_amount"`
	Deadline      string   `json:"deadline" binding:"required"`
}

type UpdateSavingsGoalRequest struct {
	CurrentAmount *float64 `json:"current_amount" binding:"required"`
}

func (h *Handlers) CreateSavingsGoal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	goal := &models.SavingsGoal{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  *req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.store.InsertSavingsGoal(c.Request.Context(), goal); err != nil {
		logger.Get().Error("error creating savings goal", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

func (h *Handlers) ListSavingsGoals(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	goals, err := h.store.ListSavingsGoals(c.Request.Context(), userID)
	if err != nil {
		logger.Get().Error("error listing savings goals", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// UpdateSavingsGoal patches the saved-so-far amount only. Title, target and
// deadline are fixed at creation.
func (h *Handlers) UpdateSavingsGoal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	id := c.Param("id")
	matched, err := h.store.UpdateSavingsGoalAmount(c.Request.Context(), id, userID, *req.CurrentAmount)
	if err != nil {
		logger.Get().Error("error updating savings goal", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if matched == 0 {
		respondError(c, http.StatusNotFound, KindNotFound, "Savings goal not found")
		return
	}

	updated, err := h.store.FindSavingsGoalByID(c.Request.Context(), id, userID)
	if err != nil {
		logger.Get().Error("error re-fetching savings goal", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if updated == nil {
		respondError(c, http.StatusNotFound, KindNotFound, "Savings goal not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handlers) DeleteSavingsGoal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteSavingsGoal(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		logger.Get().Error("error deleting savings goal", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if deleted == 0 {
		respondError(c, http.StatusNotFound, KindNotFound, "Savings goal not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Savings goal deleted successfully"})
}
