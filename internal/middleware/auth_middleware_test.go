package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/pkg/auth"
)

func newTestRouter(t *testing.T, roles ...models.Role) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "edukta.test",
	})
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	group := router.Group("/protected", mw.JWTAuth())
	if len(roles) > 0 {
		group.Use(mw.RoleRequired(roles...))
	}
	group.GET("", func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		role, _ := CurrentUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "roleID": role})
	})

	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, userID int64, role models.Role) string {
	t.Helper()
	access, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: userID, RoleID: role})
	require.NoError(t, err)
	return access
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Authentication required", body["message"])
	assert.Nil(t, body["data"])
}

func TestJWTAuthBearerHeader(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := tokenFor(t, jwtService, 7, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["userID"])
	assert.Equal(t, float64(models.RoleStudent), body["roleID"])
}

func TestJWTAuthCookieFallback(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := tokenFor(t, jwtService, 9, models.RoleTeacher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequiredBlocksOtherRoles(t *testing.T) {
	router, jwtService := newTestRouter(t, models.RoleTeacher)
	token := tokenFor(t, jwtService, 3, models.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	router, jwtService := newTestRouter(t, models.RoleTeacher)
	token := tokenFor(t, jwtService, 3, models.RoleTeacher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequiredAdminPassesEveryGate(t *testing.T) {
	router, jwtService := newTestRouter(t, models.RoleTeacher)
	token := tokenFor(t, jwtService, 1, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
