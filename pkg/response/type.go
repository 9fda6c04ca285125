package response

import (
	"encoding/json"
	"time"

	"date-arithmetic-service/pkg/datemath"
	pkgErrors "date-arithmetic-service/pkg/errors"
)

// ValidationResp is the 400 body.
type ValidationResp struct {
	Errors []pkgErrors.FieldError `json:"errors"`
}

// ErrorResp is the body for 404, 429 and 500 answers.
type ErrorResp struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Date is a date that marshals as yyyy-MM-dd in its own location.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(datemath.Format(time.Time(d)))
}
