package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"date-arithmetic-service/internal/datecalc"
	"date-arithmetic-service/pkg/clock"
	"date-arithmetic-service/pkg/datemath"
)

var fixedNow = time.Date(2024, 7, 4, 18, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return New(&mockLogger{}, parser, clock.Fixed(fixedNow))
}

func TestShiftOperations(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		op       func(context.Context, datecalc.ShiftInput) (datecalc.ShiftOutput, error)
		input    datecalc.ShiftInput
		wantBase string
		want     string
	}{
		{name: "AddDays month boundary", op: uc.AddDays, input: datecalc.ShiftInput{Date: "2024-01-31", Offset: 1}, wantBase: "2024-01-31", want: "2024-02-01"},
		{name: "AddWeeks", op: uc.AddWeeks, input: datecalc.ShiftInput{Date: "2024-01-01", Offset: 2}, wantBase: "2024-01-01", want: "2024-01-15"},
		{name: "SubtractDays leap day", op: uc.SubtractDays, input: datecalc.ShiftInput{Date: "2024-03-01", Offset: 1}, wantBase: "2024-03-01", want: "2024-02-29"},
		{name: "SubtractDays negative moves forward", op: uc.SubtractDays, input: datecalc.ShiftInput{Date: "2024-03-01", Offset: -1}, wantBase: "2024-03-01", want: "2024-03-02"},
		{name: "AddDays defaults to clock", op: uc.AddDays, input: datecalc.ShiftInput{Offset: 10}, wantBase: "2024-07-04", want: "2024-07-14"},
		{name: "AddWeeks negative defaults to clock", op: uc.AddWeeks, input: datecalc.ShiftInput{Offset: -1}, wantBase: "2024-07-04", want: "2024-06-27"},
		{name: "Date time base", op: uc.AddDays, input: datecalc.ShiftInput{Date: "2024-12-31T23:00:00Z", Offset: 1}, wantBase: "2024-12-31", want: "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.op(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := datemath.Format(out.BaseDate); got != tt.wantBase {
				t.Errorf("BaseDate = %s, want %s", got, tt.wantBase)
			}
			if got := datemath.Format(out.Result); got != tt.want {
				t.Errorf("Result = %s, want %s", got, tt.want)
			}
			if out.Offset != tt.input.Offset {
				t.Errorf("Offset = %d, want echoed %d", out.Offset, tt.input.Offset)
			}
		})
	}
}

func TestShiftEquivalences(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-31", "2023-02-28", "2000-02-29", ""} {
		for _, n := range []int{-400, -53, -1, 0, 1, 4, 52, 1000} {
			days, err := uc.AddDays(ctx, datecalc.ShiftInput{Date: date, Offset: 7 * n})
			if err != nil {
				t.Fatalf("AddDays: %v", err)
			}
			weeks, err := uc.AddWeeks(ctx, datecalc.ShiftInput{Date: date, Offset: n})
			if err != nil {
				t.Fatalf("AddWeeks: %v", err)
			}
			if !days.Result.Equal(weeks.Result) {
				t.Errorf("add-weeks(%q,%d)=%s != add-days(7n)=%s", date, n,
					datemath.Format(weeks.Result), datemath.Format(days.Result))
			}

			sub, _ := uc.SubtractDays(ctx, datecalc.ShiftInput{Date: date, Offset: n})
			neg, _ := uc.AddDays(ctx, datecalc.ShiftInput{Date: date, Offset: -n})
			if !sub.Result.Equal(neg.Result) {
				t.Errorf("subtract-days(%q,%d) != add-days(-n)", date, n)
			}

			fwd, _ := uc.AddDays(ctx, datecalc.ShiftInput{Date: date, Offset: n})
			back, _ := uc.AddDays(ctx, datecalc.ShiftInput{Date: datemath.Format(fwd.Result), Offset: -n})
			if !back.Result.Equal(fwd.BaseDate) {
				t.Errorf("round trip (%q,%d) = %s, want %s", date, n,
					datemath.Format(back.Result), datemath.Format(fwd.BaseDate))
			}
		}
	}
}

func TestShiftErrors(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	if _, err := uc.AddDays(ctx, datecalc.ShiftInput{Date: "garbage", Offset: 1}); !errors.Is(err, datecalc.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := uc.AddDays(ctx, datecalc.ShiftInput{Date: "9999-12-31", Offset: 1}); !errors.Is(err, datecalc.ErrDateOutOfRange) {
		t.Errorf("expected ErrDateOutOfRange past year 9999, got %v", err)
	}
	if _, err := uc.SubtractDays(ctx, datecalc.ShiftInput{Date: "0000-01-01", Offset: 1}); !errors.Is(err, datecalc.ErrDateOutOfRange) {
		t.Errorf("expected ErrDateOutOfRange before year 0, got %v", err)
	}
	if _, err := uc.AddWeeks(ctx, datecalc.ShiftInput{Offset: datemath.MaxOffsetWeeks + 1}); !errors.Is(err, datecalc.ErrDateOutOfRange) {
		t.Errorf("expected ErrDateOutOfRange for oversized weeks, got %v", err)
	}
	if _, err := uc.AddDays(ctx, datecalc.ShiftInput{Offset: -datemath.MaxOffsetDays - 1}); !errors.Is(err, datecalc.ErrDateOutOfRange) {
		t.Errorf("expected ErrDateOutOfRange for oversized days, got %v", err)
	}
}

func TestShiftYearZeroIsInRange(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.SubtractDays(context.Background(), datecalc.ShiftInput{Date: "0001-01-01", Offset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := datemath.Format(out.Result); got != "0000-12-31" {
		t.Errorf("got %s, want 0000-12-31", got)
	}
}
