package datecalc

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	AddDays(ctx context.Context, input ShiftInput) (ShiftOutput, error)
	AddWeeks(ctx context.Context, input ShiftInput) (ShiftOutput, error)
	// SubtractDays negates Offset before shifting, so a negative Offset moves forward.
	SubtractDays(ctx context.Context, input ShiftInput) (ShiftOutput, error)
}
