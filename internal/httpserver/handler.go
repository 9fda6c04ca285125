package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "date-arithmetic-service/docs" // Swagger docs
	"date-arithmetic-service/internal/model"
	"date-arithmetic-service/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	// Ensure unmatched routes also answer with JSON
	srv.gin.NoRoute(response.NotFound)
}

func (srv *HTTPServer) registerMiddlewares() {
	// Recovery sits inside AccessLog so recovered 500s are still logged.
	srv.gin.Use(
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.Recovery(),
		srv.mw.CORS(),
		srv.mw.RateLimit(),
	)

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "Error details hidden: production")
	} else {
		srv.l.Infof(ctx, "Error details exposed: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api")
	srv.setupDateCalcDomain(context.Background(), api)
}

// Handler exposes the engine, e.g. for httptest.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
