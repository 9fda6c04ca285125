package datecalc

import "errors"

var (
	ErrInvalidDate        = errors.New("invalid base date")
	ErrDateOutOfRange     = errors.New("resulting date is out of the supported range")
	ErrUnknownOffsetParam = errors.New("unknown offset parameter")
)
