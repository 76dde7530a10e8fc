package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/skyblocklegends/api/internal/config"
)

func newTestServer() *Server {
	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:8080",
			Port:               "8080",
			AllowedCORSDomains: "http://localhost:3000",
			JWTSigningKey:      "test-key",
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	// Handlers only touch the DB when a request comes in, so wiring the
	// route table works without one.
	return NewServer(conf, nil)
}

func TestMountHandlers_RouteTable(t *testing.T) {
	server := newTestServer()

	routes := make(map[string]bool)
	for _, route := range server.Router.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	wanted := []string{
		http.MethodPost + " /api/v1/auth/login",
		http.MethodGet + " /api/v1/server/status",
		http.MethodGet + " /api/v1/news",
		http.MethodGet + " /api/v1/news/featured",
		http.MethodGet + " /api/v1/news/:articleID",
		http.MethodGet + " /api/v1/seasons",
		http.MethodGet + " /api/v1/seasons/current",
		http.MethodGet + " /api/v1/team",
		http.MethodGet + " /api/v1/voting-sites",
		http.MethodGet + " /api/v1/gallery",
		http.MethodGet + " /api/v1/store/items",
		http.MethodGet + " /api/v1/admin/server/config",
		http.MethodPut + " /api/v1/admin/server/config",
		http.MethodGet + " /api/v1/admin/store/items",
		http.MethodPost + " /api/v1/admin/store/items",
		http.MethodPut + " /api/v1/admin/store/items/:itemID",
		http.MethodDelete + " /api/v1/admin/store/items/:itemID",
		http.MethodGet + " /api/v1/admin/users",
		http.MethodGet + " /api/v1/admin/orders",
	}
	for _, want := range wanted {
		assert.True(t, routes[want], "missing route %s", want)
	}

	// The store listing lives under /store/items, not /store.
	assert.False(t, routes[http.MethodGet+" /api/v1/store"])
	assert.False(t, routes[http.MethodGet+" /api/v1/admin/store"])
}
