package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/pkg/jwthelper"
)

const testSigningKey = "middleware-test-key"

func newTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handlers := append([]gin.HandlerFunc{NewAuthenticator(testSigningKey).VerifyJWT()}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		claims, ok := GetClaims(ctx)
		if !ok {
			ctx.Status(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	router.GET("/protected", handlers...)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, "/protected", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp
}

func TestVerifyJWT_MissingHeader(t *testing.T) {
	resp := doRequest(t, newTestRouter(), "")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVerifyJWT_NotBearer(t *testing.T) {
	resp := doRequest(t, newTestRouter(), "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestVerifyJWT_InvalidToken(t *testing.T) {
	resp := doRequest(t, newTestRouter(), "Bearer not-a-real-token")

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestVerifyJWT_WrongKey(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte("some-other-key"), 1, "steve", domain.RoleAdmin)
	require.NoError(t, err)

	resp := doRequest(t, newTestRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, "steve", domain.RoleAdmin)
	require.NoError(t, err)

	resp := doRequest(t, newTestRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"username":"steve"}`, resp.Body.String())
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{
			name:     "admin passes admin gate",
			role:     domain.RoleAdmin,
			allowed:  []string{domain.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "moderator passes content gate",
			role:     domain.RoleModerator,
			allowed:  []string{domain.RoleAdmin, domain.RoleModerator},
			wantCode: http.StatusOK,
		},
		{
			name:     "moderator blocked from admin gate",
			role:     domain.RoleModerator,
			allowed:  []string{domain.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "player blocked from content gate",
			role:     domain.RolePlayer,
			allowed:  []string{domain.RoleAdmin, domain.RoleModerator},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(RequireRoles(tt.allowed...))

			token, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, "steve", tt.role)
			require.NoError(t, err)

			resp := doRequest(t, router, "Bearer "+token)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
