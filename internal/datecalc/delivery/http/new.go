package http

import (
	"github.com/gin-gonic/gin"

	"date-arithmetic-service/internal/datecalc"
	"date-arithmetic-service/pkg/log"
)

// Handler is the public interface for the datecalc HTTP delivery layer.
type Handler interface {
	AddDays(c *gin.Context)
	AddWeeks(c *gin.Context)
	SubtractDays(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc datecalc.UseCase
}

// New creates a new HTTP handler for the datecalc domain.
func New(l log.Logger, uc datecalc.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
