package http

import (
	"github.com/gin-gonic/gin"

	"date-arithmetic-service/internal/datecalc"
	pkgErrors "date-arithmetic-service/pkg/errors"
)

// processShiftReq validates the query string of a shift request. offsetField
// names the required offset parameter (days or weeks).
func (h *handler) processShiftReq(c *gin.Context, offsetField string) (datecalc.ShiftQuery, error) {
	q, fieldErrs := datecalc.ValidateShiftQuery(c.Request.URL.Query(), offsetField)
	if len(fieldErrs) > 0 {
		return q, pkgErrors.NewValidationError(fieldErrs...)
	}
	return q, nil
}
