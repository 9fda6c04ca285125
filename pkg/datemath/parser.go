package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // IANA zones without a system tz database
)

var (
	reCalendarDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reBasicDate    = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`)
	reYearMonth    = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	reYear         = regexp.MustCompile(`^(\d{4})$`)
	reOrdinalDate  = regexp.MustCompile(`^(\d{4})-(\d{3})$`)
	reDateTime     = regexp.MustCompile(
		`^(\d{4})-(\d{2})-(\d{2})[T ](\d{2}):(\d{2})(?::(\d{2})(?:[.,](\d+))?)?(Z|[+-]\d{2}(?::?\d{2})?)?$`,
	)
)

// Parser reads ISO 8601 strings into calendar dates in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "UTC", "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts an ISO 8601 date or date-time to midnight of the matching
// calendar day in the parser's location. Date-times carrying an offset are
// converted into the location before truncation.
func (p *Parser) Parse(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidISODate)
	}

	if m := reCalendarDate.FindStringSubmatch(raw); m != nil {
		return p.date(raw, atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := reBasicDate.FindStringSubmatch(raw); m != nil {
		return p.date(raw, atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := reYearMonth.FindStringSubmatch(raw); m != nil {
		return p.date(raw, atoi(m[1]), atoi(m[2]), 1)
	}
	if m := reYear.FindStringSubmatch(raw); m != nil {
		return p.date(raw, atoi(m[1]), 1, 1)
	}
	if m := reOrdinalDate.FindStringSubmatch(raw); m != nil {
		return p.ordinal(raw, atoi(m[1]), atoi(m[2]))
	}
	if m := reDateTime.FindStringSubmatch(raw); m != nil {
		return p.dateTime(raw, m)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, raw)
}

// IsISODate reports whether raw is an accepted ISO 8601 value. Validity does
// not depend on the location.
func IsISODate(raw string) bool {
	return utcParser.Valid(raw)
}

var utcParser = &Parser{location: time.UTC}

// Valid reports whether raw is an accepted ISO 8601 value.
func (p *Parser) Valid(raw string) bool {
	_, err := p.Parse(raw)
	return err == nil
}

func (p *Parser) date(raw string, year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, raw)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), nil
}

func (p *Parser) ordinal(raw string, year, yday int) (time.Time, error) {
	days := 365
	if daysIn(year, time.February) == 29 {
		days = 366
	}
	if yday < 1 || yday > days {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, raw)
	}
	return time.Date(year, time.January, yday, 0, 0, 0, 0, p.location), nil
}

func (p *Parser) dateTime(raw string, m []string) (time.Time, error) {
	year, month, day := atoi(m[1]), atoi(m[2]), atoi(m[3])
	hour, minute := atoi(m[4]), atoi(m[5])
	sec := 0
	if m[6] != "" {
		sec = atoi(m[6])
	}
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) ||
		hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, raw)
	}

	nsec := 0
	if frac := m[7]; frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		nsec = atoi(frac + strings.Repeat("0", 9-len(frac)))
	}

	loc := p.location
	if zone := m[8]; zone != "" {
		var err error
		if loc, err = fixedZone(zone); err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidISODate, raw)
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, loc)
	return p.StartOfDay(t), nil
}

// fixedZone parses "Z", "+hh", "+hhmm" or "+hh:mm".
func fixedZone(zone string) (*time.Location, error) {
	if zone == "Z" {
		return time.UTC, nil
	}
	digits := strings.ReplaceAll(zone[1:], ":", "")
	hours, minutes := atoi(digits[:2]), 0
	if len(digits) == 4 {
		minutes = atoi(digits[2:])
	}
	if hours > 23 || minutes > 59 {
		return nil, ErrInvalidISODate
	}
	offset := hours*3600 + minutes*60
	if zone[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(zone, offset), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// atoi is only called on regexp-matched digit groups.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
