package usecase

import (
	"fmt"
	"time"

	"date-arithmetic-service/internal/datecalc"
)

// baseDate resolves the explicit date, or today's date from the clock when raw is empty.
func (uc *implUseCase) baseDate(raw string) (time.Time, error) {
	if raw == "" {
		return uc.parser.StartOfDay(uc.clock.Now()), nil
	}
	t, err := uc.parser.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", datecalc.ErrInvalidDate, err)
	}
	return t, nil
}

func exceeds(n, limit int) bool {
	return n < -limit || n > limit
}
