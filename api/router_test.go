package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/backtrack-maze/api/i"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingController struct{}

func (pingController) RegisterPublic(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (pingController) RegisterProtected(r *gin.RouterGroup) {
	r.GET("/secret", func(c *gin.Context) { c.String(http.StatusOK, "hidden") })
}

func TestRouterGroups(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	handler := NewRouter(Config{
		BaseURL:                 "/api",
		Controllers:             []i.Controller{pingController{}},
		AuthorizationMiddleware: deny,
		Logger:                  logger,
	}).Handler()

	serve := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := serve("/api/v1/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve("/api/v1/secret").Code)
	assert.Equal(t, http.StatusNotFound, serve("/v1/ping").Code)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "/api/v1/ping", entries[0].Data["path"])
	assert.Equal(t, http.StatusOK, entries[0].Data["status"])
	assert.Equal(t, http.StatusUnauthorized, entries[1].Data["status"])
}
