package deckgen

// Config holds generation settings for the orchestrator.
type Config struct {
	// PresentationMaxTokens caps the one-shot whole-deck response.
	PresentationMaxTokens int

	// SlideMaxTokens caps a single slide response in streaming mode.
	SlideMaxTokens int

	// AgendaMaxTokens caps the agenda-planning response, which is just a
	// short JSON array of subtopic strings.
	AgendaMaxTokens int

	// Temperature is the sampling temperature for all generation calls.
	Temperature float64
}

// DefaultConfig returns sensible defaults for deck generation.
func DefaultConfig() Config {
	return Config{
		PresentationMaxTokens: 8192,
		SlideMaxTokens:        1024,
		AgendaMaxTokens:       512,
		Temperature:           0.5,
	}
}
