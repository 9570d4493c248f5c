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

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact stores a message from the public contact form. No auth, no
// owner; messages are write-only through the API.
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	msg := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.InsertContactMessage(c.Request.Context(), msg); err != nil {
		logger.Get().Error("error storing contact message", zap.Error(err))
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message received successfully"})
}
