package deckgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/llm"
)

// planAgenda decides the subtopic list for the content slides. Planning is
// advisory, not contractual: an unparseable reply falls back to generic
// subtopic names and never fails. Only a failure of the inference call
// itself is returned.
func (s *Service) planAgenda(ctx context.Context, req deck.LessonRequest) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "agenda-plan")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: plannerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAgendaPlanningMessage(req)},
		},
		MaxTokens:   s.cfg.AgendaMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	subtopics, err := parseSubtopics(resp.Content)
	if err != nil || len(subtopics) < req.NSlides {
		s.log.Warn().Err(err).Int("parsed", len(subtopics)).Int("wanted", req.NSlides).
			Msg("agenda planning reply unusable, falling back to generic subtopics")
		return fallbackSubtopics(req.NSlides), nil
	}

	return subtopics[:req.NSlides], nil
}

// parseSubtopics permissively parses a reply that should be a JSON array of
// strings, tolerating surrounding markdown code fences.
func parseSubtopics(raw json.RawMessage) ([]string, error) {
	content := stripCodeFence(strings.TrimSpace(string(raw)))

	var subtopics []string
	if err := json.Unmarshal([]byte(content), &subtopics); err != nil {
		return nil, fmt.Errorf("parse subtopic list: %w", err)
	}
	return subtopics, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag.
func stripCodeFence(content string) string {
	if strings.HasPrefix(content, "```") {
		if _, rest, ok := strings.Cut(content, "\n"); ok {
			content = rest
		} else {
			content = content[3:]
		}
	}
	if idx := strings.LastIndex(content, "```"); idx >= 0 && strings.HasSuffix(strings.TrimSpace(content[idx:]), "```") {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}

// fallbackSubtopics is the deterministic agenda used when planning produces
// nothing usable.
func fallbackSubtopics(n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = fmt.Sprintf("Topic %d", i+1)
	}
	return out
}
