// Package mockapi implements the development backend for the onboarding
// client: login, company creation, and logo upload, with in-memory storage.
// Its response shapes and validation messages match what the real API is
// expected to return, so the client can be exercised end to end without it.
package mockapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/winkhq/onboard/internal/filex"
	"github.com/winkhq/onboard/internal/logging"
)

type Server struct {
	cfg       *Config
	logger    logging.Logger
	engine    *gin.Engine
	users     *userStore
	companies *companyStore
	uploadDir string
}

// NewServer wires the routes and seeds the demo user. The upload directory
// is created under the current working directory if it does not exist.
func NewServer(cfg *Config, logger logging.Logger) (*Server, error) {
	uploadDir, err := filex.EnsureSubdDir(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	users := newUserStore()
	if err := users.add("user-1", cfg.DemoEmail, cfg.DemoName, cfg.DemoPassword); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		users:     users,
		companies: newCompanyStore(),
		uploadDir: uploadDir,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), s.latency())

	api := engine.Group("/api")
	api.POST("/auth/login", s.login)
	api.POST("/companies/create", s.createCompany)
	api.POST("/companies/upload-logo", s.uploadLogo)

	engine.Static("/logos", uploadDir)

	s.engine = engine
	return s, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.engine}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "mock API listening", "addr", s.cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) latency() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.Latency > 0 {
			time.Sleep(s.cfg.Latency)
		}
		c.Next()
	}
}
