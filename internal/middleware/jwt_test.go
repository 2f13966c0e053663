package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/service"
	"github.com/noah-isme/gradetracker-api/internal/store"
)

func newJWTRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(store.NewMemoryStore(), nil, nil, service.AuthConfig{
		TokenSecret: "test_secret",
		TokenExpiry: time.Hour,
	})

	r := gin.New()
	r.GET("/me", JWT(auth), func(c *gin.Context) {
		claims := CurrentUser(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r, auth
}

func TestJWTMiddlewareAcceptsIssuedToken(t *testing.T) {
	r, auth := newJWTRouter(t)

	resp, err := auth.Authenticate(models.LoginRequest{Username: "MathTeacher", Password: "Math"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MathTeacher")
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	r, _ := newJWTRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareMalformedHeader(t *testing.T) {
	r, _ := newJWTRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareGarbageToken(t *testing.T) {
	r, _ := newJWTRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
