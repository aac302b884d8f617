package deck

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Bounds for Question fields.
const (
	QuestionPromptMinLen = 10
	QuestionMinOptions   = 2
	QuestionMaxOptions   = 5
)

// Question is a multiple-choice exercise attached to one content slide.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// NewQuestion validates and constructs a Question.
//
// The answer must map to one of the options: either an exact match after
// trimming, or a single letter matching the first character of an option
// case-insensitively (label answers like "C" for "C) Political reform").
// An unmappable answer is a model hallucination and fails construction.
func NewQuestion(prompt string, options []string, answer string) (*Question, error) {
	if len(prompt) < QuestionPromptMinLen {
		return nil, violation(KindFieldBounds,
			"question prompt must be at least %d characters, got %d", QuestionPromptMinLen, len(prompt))
	}
	if len(options) < QuestionMinOptions || len(options) > QuestionMaxOptions {
		return nil, violation(KindFieldBounds,
			"question must offer %d-%d options, got %d", QuestionMinOptions, QuestionMaxOptions, len(options))
	}

	if !answerMatchesOption(answer, options) {
		return nil, violation(KindAnswerNotInOptions,
			"answer %q does not match any of the provided options", answer)
	}

	return &Question{
		Prompt:  prompt,
		Options: options,
		Answer:  answer,
	}, nil
}

func answerMatchesOption(answer string, options []string) bool {
	trimmed := strings.TrimSpace(answer)

	for _, opt := range options {
		if trimmed == strings.TrimSpace(opt) {
			return true
		}
	}

	// Single-letter label answers match the first rune of an option.
	if label, _ := utf8.DecodeRuneInString(trimmed); utf8.RuneCountInString(trimmed) == 1 && unicode.IsLetter(label) {
		for _, opt := range options {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			first, _ := utf8.DecodeRuneInString(opt)
			if strings.EqualFold(string(label), string(first)) {
				return true
			}
		}
	}

	return false
}
