package usecase

import (
	"date-arithmetic-service/pkg/clock"
	"date-arithmetic-service/pkg/datemath"
	"date-arithmetic-service/pkg/log"
)

// implUseCase is the private implementation of datecalc.UseCase.
type implUseCase struct {
	parser *datemath.Parser
	clock  clock.Clock
	l      log.Logger
}

// New creates a new datecalc UseCase implementation.
func New(l log.Logger, parser *datemath.Parser, clk clock.Clock) *implUseCase {
	return &implUseCase{
		parser: parser,
		clock:  clk,
		l:      l,
	}
}
