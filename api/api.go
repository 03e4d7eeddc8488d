package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/papercomputeco/charnn/pkg/predictor"
)

// Server serves predictions from a single loaded model.
type Server struct {
	config    Config
	predictor *predictor.Predictor
	logger    *slog.Logger
	app       *fiber.App
}

// NewServer creates a new API server around a loaded predictor.
func NewServer(config Config, p *predictor.Predictor, logger *slog.Logger) (*Server, error) {
	if p == nil {
		return nil, errors.New("api: predictor is required")
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:    config,
		predictor: p,
		logger:    logger,
		app:       app,
	}

	app.Get("/ping", s.handlePing)
	app.Get("/test", s.handleTest)
	app.Get("/info", s.handleInfo)
	app.Get("/", s.handlePredict)
	app.Post("/", s.handlePredict)

	return s, nil
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		"listen", s.config.ListenAddr,
		"run_id", s.config.RunID,
		"categories", s.predictor.Registry().Len(),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
