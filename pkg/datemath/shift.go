package datemath

import "time"

// AddDays shifts the calendar day of t by n days. The result is midnight in
// the parser's location, so DST transitions never move it to another day.
func (p *Parser) AddDays(t time.Time, n int) time.Time {
	return p.StartOfDay(t).AddDate(0, 0, n)
}

// AddWeeks shifts t by n*7 calendar days.
func (p *Parser) AddWeeks(t time.Time, n int) time.Time {
	return p.AddDays(t, n*7)
}

// SubtractDays shifts t back by n calendar days. A negative n moves forward.
func (p *Parser) SubtractDays(t time.Time, n int) time.Time {
	return p.AddDays(t, -n)
}

// InRange reports whether t falls within [MinYear, MaxYear].
func InRange(t time.Time) bool {
	return t.Year() >= MinYear && t.Year() <= MaxYear
}

// Format renders t as yyyy-MM-dd.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}
