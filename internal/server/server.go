package server

import (
	"context"
	"iter"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deckforge/deckforge/internal/deck"
)

// Generator is the deck generation capability the HTTP layer is built on.
type Generator interface {
	Generate(ctx context.Context, req deck.LessonRequest) (*deck.Presentation, error)
	Stream(ctx context.Context, req deck.LessonRequest) iter.Seq2[*deck.Slide, error]
}

// Info describes the running deployment for the health and root endpoints.
type Info struct {
	Provider    string
	ModelID     string
	Environment string
	Version     string
}

// Server is the HTTP front of the service.
type Server struct {
	app  *fiber.App
	gen  Generator
	info Info
	log  zerolog.Logger
}

// New assembles the fiber app with all middleware and routes. gen may be nil
// when no LLM credential is configured; the server still starts, reports a
// degraded health status, and rejects generation requests.
func New(gen Generator, info Info, log zerolog.Logger) *Server {
	s := &Server{
		gen:  gen,
		info: info,
		log:  log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "deckforge",
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		// Streaming responses outlive any sane write timeout; generation
		// deadlines are enforced per LLM call instead.
		WriteTimeout: 0,
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	s.app.Use(s.requestIDMiddleware())
	s.app.Use(s.loggingMiddleware())
	s.app.Use(metricsMiddleware())

	reg := newMetricsRegistry()

	s.app.Get("/", s.handleRoot)
	s.app.Get("/health", s.handleHealth)
	s.app.Get("/metrics", metricsHandler(reg))

	v1 := s.app.Group("/api/v1")
	v1.Post("/slide", s.handleGenerate)
	v1.Post("/streaming", s.handleStream)

	return s
}

// Listen blocks serving HTTP on the given port.
func (s *Server) Listen(port string) error {
	s.log.Info().Str("port", port).Msg("http server listening")
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

const requestIDKey = "request_id"

// requestIDMiddleware assigns every request a UUID, honoring one supplied by
// the client in X-Request-ID.
func (s *Server) requestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDKey, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

// loggingMiddleware emits one structured line per request.
func (s *Server) loggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" || c.Path() == "/health" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		s.log.Info().
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")

		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
