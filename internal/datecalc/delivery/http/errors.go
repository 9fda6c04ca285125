package http

import (
	"context"
	"errors"
	"strconv"

	"date-arithmetic-service/internal/datecalc"
	pkgErrors "date-arithmetic-service/pkg/errors"
)

// mapError translates use-case errors into errors pkg/response understands.
// Unknown errors pass through unchanged and are answered with a 500.
func (h *handler) mapError(ctx context.Context, op string, err error, input datecalc.ShiftInput, offsetField string) error {
	switch {
	case errors.Is(err, datecalc.ErrDateOutOfRange):
		h.l.Debugf(ctx, "%s: %v", op, err)
		return pkgErrors.NewValidationError(pkgErrors.NewQueryFieldError(
			offsetField, strconv.Itoa(input.Offset), offsetField+" moves the date outside years 0000-9999",
		))
	case errors.Is(err, datecalc.ErrInvalidDate):
		h.l.Debugf(ctx, "%s: %v", op, err)
		return pkgErrors.NewValidationError(pkgErrors.NewQueryFieldError(
			datecalc.ParamDate, input.Date, datecalc.ParamDate+" must be a valid ISO 8601 date",
		))
	default:
		h.l.Errorf(ctx, "%s: %v", op, err)
		return err
	}
}
