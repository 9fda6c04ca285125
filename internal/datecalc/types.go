package datecalc

import "time"

// Query parameter names.
const (
	ParamDate  = "date"
	ParamDays  = "days"
	ParamWeeks = "weeks"
)

// --- UseCase Inputs ---

// ShiftInput is a validated request. An empty Date means "now".
type ShiftInput struct {
	Date   string
	Offset int
}

// --- UseCase Outputs ---

// ShiftOutput holds both dates at midnight in the service location. Offset
// echoes the caller's value, never the negated one.
type ShiftOutput struct {
	BaseDate time.Time
	Result   time.Time
	Offset   int
}
