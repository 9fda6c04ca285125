package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dateCalcHTTP "date-arithmetic-service/internal/datecalc/delivery/http"
)

// setupDateCalcDomain registers the date arithmetic routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupDateCalcDomain(ctx context.Context, api *gin.RouterGroup) {
	h := dateCalcHTTP.New(srv.l, srv.dateCalcUC)

	// Routes: /api/add-days, /api/add-weeks, /api/subtract-days
	dateCalcHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "DateCalc domain registered")
}
