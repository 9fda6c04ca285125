package middleware

import (
	"date-arithmetic-service/internal/model"
	"date-arithmetic-service/pkg/log"
)

// Config is the middleware subset of the service configuration.
type Config struct {
	Environment    string
	RequestsPerMin int
	AllowedOrigins []string
}

type Middleware struct {
	l            log.Logger
	config       Config
	redactErrors bool
	rateLimiter  *rateLimiter
}

// New builds the middleware set. Fault details are hidden from 500 bodies in production.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:            l,
		config:       cfg,
		redactErrors: model.IsProduction(cfg.Environment),
	}
	if cfg.RequestsPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
