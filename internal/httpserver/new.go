package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/elhenawym124-ops/chatai-sub002/internal/quota"
	"github.com/elhenawym124-ops/chatai-sub002/internal/routing/usecase"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	db           *sql.DB
	jwtSecret    string
	geminiAPIURL string

	// AI core tuning
	routing usecase.Config
	quota   quota.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB           *sql.DB
	JWTSecret    string
	GeminiAPIURL string

	Routing usecase.Config
	Quota   quota.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		db:           cfg.DB,
		jwtSecret:    cfg.JWTSecret,
		geminiAPIURL: cfg.GeminiAPIURL,
		routing:      cfg.Routing,
		quota:        cfg.Quota,
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
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtSecret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}
