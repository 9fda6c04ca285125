package datemath

import "errors"

// DateLayout is the calendar-date layout used on the wire (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// Supported year range for shifted dates. Outside it DateLayout no longer
// yields a four-digit year.
const (
	MinYear = 0
	MaxYear = 9999
)

// MaxOffsetDays bounds day offsets so that week conversion cannot overflow and
// any valid base date stays close to the supported year range.
const (
	MaxOffsetDays  = 3_660_000
	MaxOffsetWeeks = MaxOffsetDays / 7
)

var ErrInvalidISODate = errors.New("invalid ISO 8601 date")
