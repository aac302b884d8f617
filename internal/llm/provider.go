package llm

import (
	"context"
	"encoding/json"
)

// Provider is the structured inference capability the rest of the service is
// built on: given a prompt and an optional target schema, return JSON
// conforming to that schema, or fail with one of the typed errors in this
// package. Consumers never branch on which backend sits behind it.
type Provider interface {
	// Generate sends one request to the LLM and returns its structured
	// response. When req.Schema is set, the backend uses its native
	// structured-output mechanism and the returned Content is validated
	// against the schema before it is handed back.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single inference call.
type Request struct {
	// System sets the LLM's role and constraints.
	System string

	// Messages is the conversation. Slide generation is single-turn, so this
	// usually holds exactly one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// When nil, Content is the raw text of the reply.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls sampling randomness, 0.0-1.0.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "deck-slide".
	Name string

	// Description tells the LLM what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the LLM's output for one request.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise the raw reply text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
