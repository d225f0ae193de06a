package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/pkg/auth"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "enrolldesk-test",
	})
	m := NewAuthMiddleware(jwtService)

	r := gin.New()
	protected := r.Group("/", m.JWTAuth())
	protected.GET("/read", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "username": c.GetString(ContextUsername)})
	})
	protected.POST("/write", m.RoleRequired(string(models.RoleAdmin)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{ID: 1, Username: "someone", Role: role})
	require.NoError(t, err)
	return token
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/read", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/read", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token format")
}

func TestJWTAuthRejectsBadSignature(t *testing.T) {
	r, _ := newAuthRouter(t)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
	})
	token := tokenFor(t, other, models.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/read", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	r, jwtService := newAuthRouter(t)
	token := tokenFor(t, jwtService, models.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/read", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "someone")
}

func TestRoleRequiredBlocksNonAdmin(t *testing.T) {
	r, jwtService := newAuthRouter(t)
	token := tokenFor(t, jwtService, models.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/write", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied. Admin privileges required.")
}

func TestRoleRequiredAllowsAdmin(t *testing.T) {
	r, jwtService := newAuthRouter(t)
	token := tokenFor(t, jwtService, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/write", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
