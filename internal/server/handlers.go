package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/deckgen"
)

func (s *Server) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "deckforge",
		"version": s.info.Version,
		"endpoints": fiber.Map{
			"generate":  "POST /api/v1/slide",
			"streaming": "POST /api/v1/streaming",
			"health":    "GET /health",
			"metrics":   "GET /metrics",
		},
	})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	if s.gen == nil {
		return c.JSON(fiber.Map{
			"status":      "degraded",
			"environment": s.info.Environment,
			"llm":         "not_configured",
			"timestamp":   time.Now().Unix(),
		})
	}
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"environment": s.info.Environment,
		"provider":    s.info.Provider,
		"model":       s.info.ModelID,
		"timestamp":   time.Now().Unix(),
	})
}

// parseLessonRequest decodes and validates the request body, writing the
// error response itself when the body is unusable.
func (s *Server) parseLessonRequest(c *fiber.Ctx) (deck.LessonRequest, bool) {
	var dto lessonRequestDTO
	if err := c.BodyParser(&dto); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error:  "Invalid request body",
			Detail: err.Error(),
		})
		return deck.LessonRequest{}, false
	}

	req, err := dto.toLessonRequest()
	if err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			_ = c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{
				Error:  "Validation failed",
				Fields: formatValidationErrors(err),
			})
			return deck.LessonRequest{}, false
		}
		_ = c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{
			Error:  "Validation failed",
			Detail: err.Error(),
		})
		return deck.LessonRequest{}, false
	}

	return req, true
}

// handleGenerate serves one-shot whole-deck generation.
func (s *Server) handleGenerate(c *fiber.Ctx) error {
	if s.gen == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(errorResponse{
			Error: "No LLM provider configured",
		})
	}

	req, ok := s.parseLessonRequest(c)
	if !ok {
		return nil
	}

	start := time.Now()
	presentation, err := s.gen.Generate(c.UserContext(), req)
	if err != nil {
		var mismatch *deckgen.ErrSchemaMismatch
		if errors.As(err, &mismatch) {
			generationErrorsTotal.WithLabelValues("one_shot", "schema_mismatch").Inc()
			s.log.Error().Str("request_id", requestID(c)).Err(err).Msg("generated content failed validation")
			return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{
				Error:  "Generated content doesn't match expected schema",
				Detail: err.Error(),
			})
		}
		generationErrorsTotal.WithLabelValues("one_shot", "generation_failure").Inc()
		s.log.Error().Str("request_id", requestID(c)).Err(err).Msg("generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error:  "AI generation failed",
			Detail: err.Error(),
		})
	}

	decksGeneratedTotal.WithLabelValues("one_shot").Inc()
	generationDurationSeconds.WithLabelValues("one_shot").Observe(time.Since(start).Seconds())
	return c.JSON(presentation)
}

// handleStream serves slide-by-slide generation over Server-Sent Events.
// Request validation errors are still plain JSON; the response only commits
// to the SSE content type once generation begins.
func (s *Server) handleStream(c *fiber.Ctx) error {
	if s.gen == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(errorResponse{
			Error: "No LLM provider configured",
		})
	}

	req, ok := s.parseLessonRequest(c)
	if !ok {
		return nil
	}

	c.Set(fiber.HeaderContentType, "text/event-stream; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// The stream writer runs after this handler returns, so it must not
	// touch c. Capture everything it needs now.
	gen := s.gen
	log := s.log.With().Str("request_id", requestID(c)).Logger()
	ctx, cancel := context.WithCancel(context.Background())

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		start := time.Now()
		count := 0
		for slide, err := range gen.Stream(ctx, req) {
			if err != nil {
				generationErrorsTotal.WithLabelValues("streaming", errorKind(err)).Inc()
				log.Error().Err(err).Int("slides_sent", count).Msg("stream aborted")
				writeSSEError(w, err)
				return
			}

			payload, mErr := json.Marshal(slide)
			if mErr != nil {
				log.Error().Err(mErr).Msg("slide marshal failed")
				writeSSEError(w, mErr)
				return
			}
			if _, wErr := fmt.Fprintf(w, "data: %s\n\n", payload); wErr != nil {
				log.Debug().Err(wErr).Msg("client went away")
				return
			}
			if fErr := w.Flush(); fErr != nil {
				log.Debug().Err(fErr).Msg("client went away")
				return
			}

			count++
			slidesStreamedTotal.Inc()
		}

		fmt.Fprint(w, "event: done\ndata: [DONE]\n\n")
		_ = w.Flush()

		decksGeneratedTotal.WithLabelValues("streaming").Inc()
		generationDurationSeconds.WithLabelValues("streaming").Observe(time.Since(start).Seconds())
		log.Info().Int("slides", count).Msg("stream complete")
	}))

	return nil
}

// writeSSEError emits the terminal error event. Flush failures are ignored:
// either the event arrives or the client is already gone.
func writeSSEError(w *bufio.Writer, err error) {
	label := "Generation error"
	var mismatch *deckgen.ErrSchemaMismatch
	if errors.As(err, &mismatch) {
		label = "Validation error"
	}

	payload, _ := json.Marshal(fiber.Map{
		"error":  label,
		"detail": err.Error(),
	})
	fmt.Fprintf(w, "event: error\ndata: %s\n\n", payload)
	_ = w.Flush()
}

func errorKind(err error) string {
	var mismatch *deckgen.ErrSchemaMismatch
	if errors.As(err, &mismatch) {
		return "schema_mismatch"
	}
	return "generation_failure"
}
