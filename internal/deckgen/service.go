package deckgen

import (
	"context"
	"encoding/json"
	"iter"

	"github.com/rs/zerolog"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/llm"
)

// Service orchestrates deck generation against an injected inference
// provider. It is stateless aside from immutable configuration, so one
// instance serves concurrent requests without coordination.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      zerolog.Logger
}

// NewService creates a deck generation service.
func NewService(provider llm.Provider, cfg Config, log zerolog.Logger) *Service {
	return &Service{provider: provider, cfg: cfg, log: log}
}

// questionOutput is the raw LLM question shape before validation.
type questionOutput struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// slideOutput is the raw LLM slide shape before validation.
type slideOutput struct {
	Type     string          `json:"type"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Image    string          `json:"image"`
	Question *questionOutput `json:"question"`
}

// presentationOutput is the raw LLM whole-deck shape before validation.
type presentationOutput struct {
	Topic  string        `json:"topic"`
	Grade  string        `json:"grade"`
	Slides []slideOutput `json:"slides"`
}

// Generate produces a complete validated Presentation in a single inference
// call. It either returns a deck satisfying the full structural contract or
// fails; there is no partial result and no post-processing.
func (s *Service) Generate(ctx context.Context, req deck.LessonRequest) (*deck.Presentation, error) {
	const step = "presentation"
	ctx = llm.WithPurpose(ctx, step)

	s.log.Info().
		Str("topic", req.Topic).
		Str("grade", req.Grade).
		Int("n_slides", req.NSlides).
		Str("model", s.provider.ModelID()).
		Msg("generating presentation")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: buildPresentationSystemMessage(req),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPresentationUserMessage(req)},
		},
		Schema:      PresentationSchema,
		MaxTokens:   s.cfg.PresentationMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, classify(step, err)
	}

	var out presentationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrSchemaMismatch{Step: step, Err: err}
	}

	slides := make([]*deck.Slide, 0, len(out.Slides))
	for _, so := range out.Slides {
		slide, err := slideFromOutput(so, deck.SlideType(so.Type))
		if err != nil {
			return nil, classify(step, err)
		}
		slides = append(slides, slide)
	}

	presentation, err := deck.NewPresentation(out.Topic, out.Grade, slides)
	if err != nil {
		return nil, classify(step, err)
	}

	s.log.Info().Int("slides", len(presentation.Slides)).Msg("presentation generated")
	return presentation, nil
}

// Stream produces the deck slide by slide as a finite, forward-only
// sequence: agenda planning first, then title, agenda, one slide per
// subtopic, conclusion. Each element is either a validated slide or the
// terminal error; nothing follows an error. The consumer cancels by
// breaking out of the range, and the producer observes ctx at every step.
func (s *Service) Stream(ctx context.Context, req deck.LessonRequest) iter.Seq2[*deck.Slide, error] {
	return func(yield func(*deck.Slide, error) bool) {
		s.log.Info().
			Str("topic", req.Topic).
			Int("n_slides", req.NSlides).
			Str("model", s.provider.ModelID()).
			Msg("streaming presentation")

		subtopics, err := s.planAgenda(ctx, req)
		if err != nil {
			yield(nil, classify("agenda planning", err))
			return
		}

		title, err := s.generateTitleSlide(ctx, req)
		if err != nil {
			yield(nil, err)
			return
		}
		if !yield(title, nil) {
			return
		}

		agenda, err := s.generateAgendaSlide(ctx, req, subtopics)
		if err != nil {
			yield(nil, err)
			return
		}
		if !yield(agenda, nil) {
			return
		}

		// Exactly one content slide, the middle one by index, may carry a
		// question. Images alternate starting with the first slide.
		questionIndex := req.NSlides / 2

		for i, subtopic := range subtopics {
			if ctx.Err() != nil {
				yield(nil, &ErrGenerationFailure{Step: "content slide", Err: ctx.Err()})
				return
			}

			slide, err := s.generateContentSlide(ctx, req, contentParams{
				subtopic:        subtopic,
				slideNumber:     i + 1,
				includeImage:    i%2 == 0,
				includeQuestion: i == questionIndex,
			})
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(slide, nil) {
				return
			}
		}

		conclusion, err := s.generateConclusionSlide(ctx, req, subtopics)
		if err != nil {
			yield(nil, err)
			return
		}
		yield(conclusion, nil)
	}
}

// contentParams carries the per-slide decisions the orchestrator makes for
// content slides.
type contentParams struct {
	subtopic        string
	slideNumber     int
	includeImage    bool
	includeQuestion bool
}

func (s *Service) generateTitleSlide(ctx context.Context, req deck.LessonRequest) (*deck.Slide, error) {
	return s.generateSlide(ctx, req, "title slide", deck.SlideTitle, buildTitleSlideMessage(req))
}

func (s *Service) generateAgendaSlide(ctx context.Context, req deck.LessonRequest, subtopics []string) (*deck.Slide, error) {
	return s.generateSlide(ctx, req, "agenda slide", deck.SlideAgenda, buildAgendaSlideMessage(req, subtopics))
}

func (s *Service) generateContentSlide(ctx context.Context, req deck.LessonRequest, p contentParams) (*deck.Slide, error) {
	return s.generateSlide(ctx, req, "content slide", deck.SlideContent, buildContentSlideMessage(req, p))
}

func (s *Service) generateConclusionSlide(ctx context.Context, req deck.LessonRequest, subtopics []string) (*deck.Slide, error) {
	return s.generateSlide(ctx, req, "conclusion slide", deck.SlideConclusion, buildConclusionSlideMessage(req, subtopics))
}

// generateSlide runs one per-slide inference call and validates the result.
// The orchestrator is authoritative about slide position: a slide coming
// back with the wrong type is reconstructed with the intended type, which
// re-runs validation (so a question smuggled onto a non-content slide still
// fails).
func (s *Service) generateSlide(ctx context.Context, req deck.LessonRequest, step string, want deck.SlideType, userMsg string) (*deck.Slide, error) {
	ctx = llm.WithPurpose(ctx, step)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: buildSlideSystemMessage(req),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      SlideSchema,
		MaxTokens:   s.cfg.SlideMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, classify(step, err)
	}

	var out slideOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrSchemaMismatch{Step: step, Err: err}
	}

	slide, err := slideFromOutput(out, want)
	if err != nil {
		return nil, classify(step, err)
	}
	return slide, nil
}

// slideFromOutput converts a raw LLM slide into a validated deck.Slide with
// the given type, regardless of what type the model claimed.
func slideFromOutput(out slideOutput, typ deck.SlideType) (*deck.Slide, error) {
	var question *deck.Question
	if out.Question != nil {
		q, err := deck.NewQuestion(out.Question.Prompt, out.Question.Options, out.Question.Answer)
		if err != nil {
			return nil, err
		}
		question = q
	}
	return deck.NewSlide(typ, out.Title, out.Content, out.Image, question)
}
