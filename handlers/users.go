package handlers

import (
	"errors"
	"net/http"
	"time"

	"finance-tracker/api/auth"
	"finance-tracker/api/logger"
	"finance-tracker/api/models"
	"finance-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account, rejecting duplicate emails, and logs the new
// user straight in by issuing a token.
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	existing, err := h.store.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Get().Error("error checking for existing user", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if existing != nil {
		respondError(c, http.StatusConflict, KindConflict, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Get().Error("error hashing password", zap.Error(err))
		respondError(c, http.StatusInternalServerError, KindInternalError, "Failed to register user")
		return
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.InsertUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, mongodb.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, KindConflict, "Email already registered")
			return
		}
		logger.Get().Error("error inserting user", zap.Error(err))
		respondStoreError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		logger.Get().Error("error issuing token", zap.String("user_id", user.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, KindInternalError, "Failed to issue token")
		return
	}

	logger.Get().Info("user registered", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// Login verifies credentials. An unknown email and a wrong password produce
// the same response on purpose.
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidationError, err.Error())
		return
	}

	user, err := h.store.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Get().Error("error finding user by email", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if user == nil || !auth.CheckPassword(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, KindInvalidCredentials, "Invalid email or password")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		logger.Get().Error("error issuing token", zap.String("user_id", user.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, KindInternalError, "Failed to issue token")
		return
	}

	logger.Get().Info("user logged in", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// Me returns the authenticated user's profile. Token validity alone is not
// enough: the id must still resolve to a stored user.
func (h *Handlers) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.store.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Get().Error("error finding user", zap.String("user_id", userID), zap.Error(err))
		respondStoreError(c, err)
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, KindNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}
