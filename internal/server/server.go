// Package server exposes the engine over HTTP and a websocket UCI
// transport.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Server wires the HTTP routes to the engine.
type Server struct {
	cfg      *config.Config
	log      zerolog.Logger
	app      *fiber.App
	searcher *search.Searcher
}

// New builds a Server and registers its routes.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log,
		searcher: search.NewSearcher(log, search.WithWorkers(cfg.Search.Workers)),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               cfg.UCI.Name,
		BodyLimit:             cfg.Server.BodyLimit,
		ReadTimeout:           cfg.Server.ReadTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(RequestID())
	s.app.Use(s.logRequests())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, " + RequestIDHeader,
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: RequestIDHeader,
	}))

	s.app.Get("/healthz", s.health)

	api := s.app.Group("/v1")
	api.Post("/bestmove", s.bestMove)
	api.Post("/legal", s.legal)
	api.Use("/uci", upgradeOnly())
	api.Get("/uci", websocket.New(s.handleUCI))

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.log.Info().Str("addr", s.cfg.Server.ListenAddr).Msg("listening")
	return s.app.Listen(s.cfg.Server.ListenAddr)
}

// Shutdown stops accepting connections and waits for active ones.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleError renders every error as a JSON body.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error().Err(err).Str("rid", requestID(c)).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
