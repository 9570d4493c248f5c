package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/api/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey)})
	})
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	router := setupAuthRouter(auth.NewTokenService("test-secret"))

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no scheme", "some-token"},
		{"wrong scheme", "Basic abc123"},
		{"bearer without token", "Bearer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(router, tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	router := setupAuthRouter(auth.NewTokenService("test-secret"))

	w := get(router, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	router := setupAuthRouter(auth.NewTokenService("test-secret"))

	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := get(router, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthPassesSubjectToHandler(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := setupAuthRouter(tokens)

	token, err := tokens.Issue("user-42")
	require.NoError(t, err)

	w := get(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}
