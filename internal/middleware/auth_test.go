package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mechshare/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(manager *utils.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetEmail(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := authTestRouter(utils.NewJWTManager("secret", "HS256", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := authTestRouter(utils.NewJWTManager("secret", "HS256", time.Hour))

	cases := map[string]string{
		"格式错误":  "Basic abc",
		"伪造Token": "Bearer not-a-token",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", header)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	manager := utils.NewJWTManager("secret", "HS256", -time.Minute)
	token, err := manager.GenerateToken("u1", "u1@example.com")
	require.NoError(t, err)

	r := authTestRouter(utils.NewJWTManager("secret", "HS256", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	manager := utils.NewJWTManager("secret", "HS256", time.Hour)
	token, err := manager.GenerateToken("u1", "u1@example.com")
	require.NoError(t, err)

	r := authTestRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1@example.com")
}
