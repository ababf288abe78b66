// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courier/internal/http/handlers"
	"courier/internal/http/middleware"
	"courier/internal/modules/estimate"
)

// ServerDeps bundles everything the HTTP layer needs.
type ServerDeps struct {
	Estimate *estimate.Service
	Log      *zap.Logger
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(deps ServerDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.CORS())

	h := handlers.NewEstimateHandler(deps.Estimate)
	r.GET("/", h.Root)
	r.POST("/api/calculate", h.Calculate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
