package datecalc

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"

	"date-arithmetic-service/pkg/datemath"
	pkgErrors "date-arithmetic-service/pkg/errors"
)

const (
	tagRequired  = "required"
	tagISO8601   = "iso8601"
	tagInteger   = "integer"
	tagOffsetMax = "offsetmax"
)

var reInteger = regexp.MustCompile(`^[+-]?\d+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, tagISO8601, func(fl validator.FieldLevel) bool {
		return datemath.IsISODate(fl.Field().String())
	})
	mustRegister(v, tagInteger, func(fl validator.FieldLevel) bool {
		return reInteger.MatchString(fl.Field().String())
	})
	mustRegister(v, tagOffsetMax, func(fl validator.FieldLevel) bool {
		limit, err := strconv.ParseInt(fl.Param(), 10, 64)
		if err != nil {
			return false
		}
		n, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		return err == nil && n >= -limit && n <= limit
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("datecalc: register validation %q: %v", tag, err))
	}
}

// ShiftQuery is the typed result of a successful validation.
type ShiftQuery struct {
	Date   string
	Offset int
}

// ToInput converts the query into a UseCase input.
func (q ShiftQuery) ToInput() ShiftInput {
	return ShiftInput{Date: q.Date, Offset: q.Offset}
}

// ValidateShiftQuery checks the optional date and the required offset
// parameter named offsetField (days or weeks). It returns either the typed
// query or one FieldError per rejected parameter.
func ValidateShiftQuery(values url.Values, offsetField string) (ShiftQuery, []pkgErrors.FieldError) {
	maxOffset, err := offsetLimit(offsetField)
	if err != nil {
		return ShiftQuery{}, []pkgErrors.FieldError{
			pkgErrors.NewQueryFieldError(offsetField, "", err.Error()),
		}
	}

	var (
		q    ShiftQuery
		errs []pkgErrors.FieldError
	)

	if values.Has(ParamDate) {
		raw := values.Get(ParamDate)
		if fe := check(ParamDate, raw, tagISO8601); fe != nil {
			errs = append(errs, *fe)
		} else {
			q.Date = raw
		}
	}

	raw := values.Get(offsetField)
	rules := fmt.Sprintf("%s,%s,%s=%d", tagRequired, tagInteger, tagOffsetMax, maxOffset)
	if fe := check(offsetField, raw, rules); fe != nil {
		errs = append(errs, *fe)
	} else {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			errs = append(errs, pkgErrors.NewQueryFieldError(offsetField, raw, offsetField+" must be an integer"))
		}
		q.Offset = n
	}

	if len(errs) > 0 {
		return ShiftQuery{}, errs
	}
	return q, nil
}

func offsetLimit(field string) (int, error) {
	switch field {
	case ParamDays:
		return datemath.MaxOffsetDays, nil
	case ParamWeeks:
		return datemath.MaxOffsetWeeks, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOffsetParam, field)
}

func check(field, raw, rules string) *pkgErrors.FieldError {
	err := validate.Var(raw, rules)
	if err == nil {
		return nil
	}

	fe := pkgErrors.NewQueryFieldError(field, raw, field+" is invalid")
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &fe
	}

	switch verrs[0].Tag() {
	case tagRequired:
		fe.Msg = field + " is required"
	case tagISO8601:
		fe.Msg = field + " must be a valid ISO 8601 date"
	case tagInteger:
		fe.Msg = field + " must be an integer"
	case tagOffsetMax:
		fe.Msg = fmt.Sprintf("%s must be between -%s and %s", field, verrs[0].Param(), verrs[0].Param())
	}
	return &fe
}
