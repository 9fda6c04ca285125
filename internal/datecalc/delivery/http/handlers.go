package http

import (
	"github.com/gin-gonic/gin"

	"date-arithmetic-service/internal/datecalc"
	"date-arithmetic-service/pkg/response"
)

// AddDays godoc
// @Summary     Add days to a date
// @Description Shifts the base date (default: today) forward by the given number of calendar days.
// @Tags        DateCalc
// @Produce     json
// @Param       date query string  false "Base date, ISO 8601"
// @Param       days query integer true  "Days to add, may be negative"
// @Success     200 {object} daysResp
// @Failure     400 {object} response.ValidationResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/add-days [GET]
func (h *handler) AddDays(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processShiftReq(c, datecalc.ParamDays)
	if err != nil {
		h.l.Debugf(ctx, "datecalc.http.AddDays: %v", err)
		response.Error(c, err)
		return
	}

	input := req.ToInput()
	output, err := h.uc.AddDays(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.AddDays", err, input, datecalc.ParamDays))
		return
	}

	response.OK(c, h.newDaysResp(output))
}

// AddWeeks godoc
// @Summary     Add weeks to a date
// @Description Shifts the base date (default: today) forward by weeks*7 calendar days.
// @Tags        DateCalc
// @Produce     json
// @Param       date  query string  false "Base date, ISO 8601"
// @Param       weeks query integer true  "Weeks to add, may be negative"
// @Success     200 {object} weeksResp
// @Failure     400 {object} response.ValidationResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/add-weeks [GET]
func (h *handler) AddWeeks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processShiftReq(c, datecalc.ParamWeeks)
	if err != nil {
		h.l.Debugf(ctx, "datecalc.http.AddWeeks: %v", err)
		response.Error(c, err)
		return
	}

	input := req.ToInput()
	output, err := h.uc.AddWeeks(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.AddWeeks", err, input, datecalc.ParamWeeks))
		return
	}

	response.OK(c, h.newWeeksResp(output))
}

// SubtractDays godoc
// @Summary     Subtract days from a date
// @Description Shifts the base date (default: today) back by the given number of days. A negative value moves forward.
// @Tags        DateCalc
// @Produce     json
// @Param       date query string  false "Base date, ISO 8601"
// @Param       days query integer true  "Days to subtract"
// @Success     200 {object} daysResp
// @Failure     400 {object} response.ValidationResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /api/subtract-days [GET]
func (h *handler) SubtractDays(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processShiftReq(c, datecalc.ParamDays)
	if err != nil {
		h.l.Debugf(ctx, "datecalc.http.SubtractDays: %v", err)
		response.Error(c, err)
		return
	}

	input := req.ToInput()
	output, err := h.uc.SubtractDays(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(ctx, "uc.SubtractDays", err, input, datecalc.ParamDays))
		return
	}

	response.OK(c, h.newDaysResp(output))
}
