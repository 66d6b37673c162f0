package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"smart-reminders/config"
	"smart-reminders/pkg/log"
	"smart-reminders/pkg/nlparse"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Metrics
	registry *prometheus.Registry

	// Reminder domain
	parser    *nlparse.Parser
	parserCfg config.ParserConfig
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Registry receives the service collectors and backs /metrics.
	// A fresh registry is created when nil.
	Registry *prometheus.Registry

	// Reminder domain
	Parser    *nlparse.Parser
	ParserCfg config.ParserConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		registry:    registry,
		parser:      cfg.Parser,
		parserCfg:   cfg.ParserCfg,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parser == nil {
		return errors.New("parser is required")
	}
	return nil
}
