package deckgen

import "github.com/deckforge/deckforge/internal/llm"

// questionDefinition is the JSON schema fragment for a multiple-choice
// question. Answer mapping (exact or label match) is enforced by the deck
// constructors, not by JSON Schema.
var questionDefinition = map[string]any{
	"type":        "object",
	"description": "A multiple choice question reinforcing the lesson content",
	"properties": map[string]any{
		"prompt": map[string]any{
			"type":        "string",
			"minLength":   10,
			"description": "The question statement related to the lesson content",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    2,
			"maxItems":    5,
			"description": "Answer options, typically 4, labeled A) B) C) D)",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "The correct answer. Must match one of the options exactly, or be its letter label.",
		},
	},
	"required":             []any{"prompt", "options", "answer"},
	"additionalProperties": false,
}

// slideDefinition is the JSON schema fragment for a single slide.
var slideDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type":        "string",
			"enum":        []any{"title", "agenda", "content", "conclusion"},
			"description": "The structural type of the slide",
		},
		"title": map[string]any{
			"type":        "string",
			"minLength":   1,
			"maxLength":   200,
			"description": "Clear and concise slide title",
		},
		"content": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "The main text of the slide: bullet points or short paragraphs",
		},
		"image": map[string]any{
			"type":        "string",
			"maxLength":   200,
			"description": "Optional search query for a relevant image. Omit when no image would help.",
		},
		"question": questionDefinition,
	},
	"required":             []any{"type", "title", "content"},
	"additionalProperties": false,
}

// SlideSchema is the structured-output schema for single-slide generation.
var SlideSchema = &llm.Schema{
	Name:        "deck-slide",
	Description: "One slide of an educational presentation",
	Definition:  slideDefinition,
}

// PresentationSchema is the structured-output schema for whole-deck
// generation.
var PresentationSchema = &llm.Schema{
	Name:        "deck-presentation",
	Description: "A complete educational slide deck: title, agenda, content slides, conclusion",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The lesson topic, echoed from the request",
			},
			"grade": map[string]any{
				"type":        "string",
				"description": "The target student grade level, echoed from the request",
			},
			"slides": map[string]any{
				"type":        "array",
				"items":       slideDefinition,
				"minItems":    3,
				"description": "Ordered slides: [title, agenda, ...content..., conclusion]",
			},
		},
		"required":             []any{"topic", "grade", "slides"},
		"additionalProperties": false,
	},
}
