package http

import (
	"date-arithmetic-service/internal/datecalc"
	"date-arithmetic-service/pkg/response"
)

// --- Response DTOs ---

type daysInput struct {
	BaseDate response.Date `json:"baseDate" swaggertype:"string" example:"2024-01-31"`
	Days     int           `json:"days" example:"1"`
}

type daysResp struct {
	Result response.Date `json:"result" swaggertype:"string" example:"2024-02-01"`
	Input  daysInput     `json:"input"`
}

func (h *handler) newDaysResp(out datecalc.ShiftOutput) daysResp {
	return daysResp{
		Result: response.Date(out.Result),
		Input: daysInput{
			BaseDate: response.Date(out.BaseDate),
			Days:     out.Offset,
		},
	}
}

type weeksInput struct {
	BaseDate response.Date `json:"baseDate" swaggertype:"string" example:"2024-01-01"`
	Weeks    int           `json:"weeks" example:"2"`
}

type weeksResp struct {
	Result response.Date `json:"result" swaggertype:"string" example:"2024-01-15"`
	Input  weeksInput    `json:"input"`
}

func (h *handler) newWeeksResp(out datecalc.ShiftOutput) weeksResp {
	return weeksResp{
		Result: response.Date(out.Result),
		Input: weeksInput{
			BaseDate: response.Date(out.BaseDate),
			Weeks:    out.Offset,
		},
	}
}
