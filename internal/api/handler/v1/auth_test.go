package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyblocklegends/api/internal/api/handler/v1/response"
	"github.com/skyblocklegends/api/internal/config"
	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/pkg/jwthelper"
	"github.com/skyblocklegends/api/internal/service"
)

type stubAuthService struct {
	user domain.User
	err  error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (domain.User, error) {
	return s.user, s.err
}

func newLoginRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(&config.APIConfig{JWTSigningKey: "test-key"}, svc)
	router := gin.New()
	router.POST("/auth/login", handler.HandleLogin)

	return router
}

func postLogin(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp
}

func TestHandleLogin_Success(t *testing.T) {
	router := newLoginRouter(&stubAuthService{
		user: domain.User{ID: 1, Username: "steve", Role: domain.RoleAdmin},
	})

	resp := postLogin(t, router, `{"username":"steve","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var body response.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	assert.Equal(t, "steve", body.User.Username)
	require.NotEmpty(t, body.Token)

	claims, err := jwthelper.ParseToken([]byte("test-key"), body.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	// Unknown username and wrong password must be indistinguishable to the
	// client.
	tests := []struct {
		name string
		err  error
	}{
		{name: "unknown username", err: service.ErrUserNotFound},
		{name: "wrong password", err: service.ErrWrongPassword},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newLoginRouter(&stubAuthService{err: tt.err})

			resp := postLogin(t, router, `{"username":"steve","password":"hunter2hunter2"}`)

			assert.Equal(t, http.StatusUnauthorized, resp.Code)
			bodies = append(bodies, resp.Body.String())
		})
	}

	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
}

func TestHandleLogin_MalformedBody(t *testing.T) {
	router := newLoginRouter(&stubAuthService{})

	resp := postLogin(t, router, `{"username":`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleLogin_MissingFields(t *testing.T) {
	router := newLoginRouter(&stubAuthService{})

	resp := postLogin(t, router, `{}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
