package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/applicant-tracking-api/internal/security"
)

func newRouter(tokens *security.TokenProvider, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireRole(tokens, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c), "role": Role(c)})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestRequireRole_NoTokenRejected tests that admin-only routes reject
// anonymous requests.
func TestRequireRole_NoTokenRejected(t *testing.T) {
	tokens := security.NewTokenProvider("test-secret")
	r := newRouter(tokens, "admin")

	w := request(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

// TestRequireRole_AnonymousUserAllowed tests that routes listing "user" let
// anonymous requests through with the anonymous role.
func TestRequireRole_AnonymousUserAllowed(t *testing.T) {
	tokens := security.NewTokenProvider("test-secret")
	r := newRouter(tokens, "admin", "user")

	w := request(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

// TestRequireRole_BadToken tests that a garbage token is rejected even on
// routes that allow anonymous users.
func TestRequireRole_BadToken(t *testing.T) {
	tokens := security.NewTokenProvider("test-secret")
	r := newRouter(tokens, "admin", "user")

	w := request(r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to authenticate token")
}

// TestRequireRole_ExpiredToken tests that expired sessions are rejected.
func TestRequireRole_ExpiredToken(t *testing.T) {
	tokens := security.NewTokenProvider("test-secret")
	token, err := tokens.Generate("64b9f00000000000000000aa", "admin", -time.Minute)
	require.NoError(t, err)
	r := newRouter(tokens, "admin")

	w := request(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestRequireRole_ValidAdmin tests that a valid token populates the request
// context.
func TestRequireRole_ValidAdmin(t *testing.T) {
	tokens := security.NewTokenProvider("test-secret")
	token, err := tokens.Generate("64b9f00000000000000000aa", "admin", time.Hour)
	require.NoError(t, err)
	r := newRouter(tokens, "admin")

	w := request(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"64b9f00000000000000000aa"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

// TestRequireRole_WrongRole tests that an authenticated user without the
// required role gets a 403.
func TestRequireRole_WrongRole(t *testing.T) {
	tokens := security.NewTokenProvider("test-secret")
	token, err := tokens.Generate("64b9f00000000000000000aa", "user", time.Hour)
	require.NoError(t, err)
	r := newRouter(tokens, "admin")

	w := request(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "do not have permission")
}
