package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"mileage/pkg/idgen"
	"mileage/pkg/logger"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

type Options struct {
	ServiceName string
	IDGenerator idgen.Generator
	Logger      logger.Logger
}

// NewRouter builds the gin engine with the shared middleware chain, health,
// swagger and the given feature handlers.
func NewRouter(opts Options, handlers ...RouteRegistrar) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		otelgin.Middleware(opts.ServiceName),
		RequestIDMiddleware(opts.IDGenerator),
		TraceLoggerMiddleware(opts.Logger),
	)

	r.GET("/health", healthHandler)
	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	initSwagger(r)

	return r
}

// healthHandler godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>Mileage API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(http.StatusOK, html)
	})
}
