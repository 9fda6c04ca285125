package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the date arithmetic endpoints onto rg (mounted at /api).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/add-days", h.AddDays)
	rg.GET("/add-weeks", h.AddWeeks)
	rg.GET("/subtract-days", h.SubtractDays)
}
