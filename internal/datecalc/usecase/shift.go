package usecase

import (
	"context"
	"time"

	"date-arithmetic-service/internal/datecalc"
	"date-arithmetic-service/pkg/datemath"
)

type shiftFunc func(base time.Time, n int) time.Time

// AddDays moves the base date forward by input.Offset calendar days.
func (uc *implUseCase) AddDays(ctx context.Context, input datecalc.ShiftInput) (datecalc.ShiftOutput, error) {
	if exceeds(input.Offset, datemath.MaxOffsetDays) {
		return datecalc.ShiftOutput{}, datecalc.ErrDateOutOfRange
	}
	return uc.shift(ctx, "AddDays", input, uc.parser.AddDays)
}

// AddWeeks moves the base date forward by input.Offset weeks.
func (uc *implUseCase) AddWeeks(ctx context.Context, input datecalc.ShiftInput) (datecalc.ShiftOutput, error) {
	if exceeds(input.Offset, datemath.MaxOffsetWeeks) {
		return datecalc.ShiftOutput{}, datecalc.ErrDateOutOfRange
	}
	return uc.shift(ctx, "AddWeeks", input, uc.parser.AddWeeks)
}

// SubtractDays moves the base date back by input.Offset calendar days.
func (uc *implUseCase) SubtractDays(ctx context.Context, input datecalc.ShiftInput) (datecalc.ShiftOutput, error) {
	if exceeds(input.Offset, datemath.MaxOffsetDays) {
		return datecalc.ShiftOutput{}, datecalc.ErrDateOutOfRange
	}
	return uc.shift(ctx, "SubtractDays", input, uc.parser.SubtractDays)
}

func (uc *implUseCase) shift(ctx context.Context, op string, input datecalc.ShiftInput, fn shiftFunc) (datecalc.ShiftOutput, error) {
	base, err := uc.baseDate(input.Date)
	if err != nil {
		uc.l.Warnf(ctx, "uc.%s baseDate: %v", op, err)
		return datecalc.ShiftOutput{}, err
	}

	result := fn(base, input.Offset)
	if !datemath.InRange(result) {
		uc.l.Debugf(ctx, "uc.%s: %s %+d out of range", op, datemath.Format(base), input.Offset)
		return datecalc.ShiftOutput{}, datecalc.ErrDateOutOfRange
	}

	uc.l.Debugf(ctx, "uc.%s: %s %+d -> %s", op, datemath.Format(base), input.Offset, datemath.Format(result))
	return datecalc.ShiftOutput{
		BaseDate: base,
		Result:   result,
		Offset:   input.Offset,
	}, nil
}
