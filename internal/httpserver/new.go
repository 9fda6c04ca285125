package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"date-arithmetic-service/internal/datecalc"
	"date-arithmetic-service/internal/middleware"
	"date-arithmetic-service/pkg/log"
)

const defaultShutdownTimeout = 5 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Date arithmetic domain
	dateCalcUC datecalc.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies may set X-Forwarded-For; with none, the client IP is the peer address.
	TrustedProxies []string

	Middleware middleware.Config

	// Date arithmetic domain
	DateCalcUseCase datecalc.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		dateCalcUC:      cfg.DateCalcUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mw = middleware.New(logger, cfg.Middleware)
	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port < 1 || srv.port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if srv.dateCalcUC == nil {
		return errors.New("datecalc usecase is required")
	}
	return nil
}
