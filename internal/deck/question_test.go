package deck

import (
	"errors"
	"testing"
)

func fourOptions() []string {
	return []string{
		"A) Sunlight",
		"B) Moonlight",
		"C) Soil",
		"D) Wind",
	}
}

func TestNewQuestion_ExactAnswerMatch(t *testing.T) {
	q, err := NewQuestion("What powers photosynthesis?", fourOptions(), "A) Sunlight")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "A) Sunlight" {
		t.Fatalf("unexpected answer: %q", q.Answer)
	}
}

func TestNewQuestion_LabelAnswerMatch(t *testing.T) {
	for _, answer := range []string{"A", "a", " C "} {
		if _, err := NewQuestion("What powers photosynthesis?", fourOptions(), answer); err != nil {
			t.Fatalf("label answer %q should match: %v", answer, err)
		}
	}
}

func TestNewQuestion_AnswerTrimmedBeforeMatch(t *testing.T) {
	if _, err := NewQuestion("What powers photosynthesis?", fourOptions(), "  A) Sunlight  "); err != nil {
		t.Fatalf("trimmed answer should match: %v", err)
	}
}

func TestNewQuestion_AnswerNotInOptions(t *testing.T) {
	_, err := NewQuestion("What powers photosynthesis?", fourOptions(), "E) Gravity")
	if err == nil {
		t.Fatal("expected error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Kind != KindAnswerNotInOptions {
		t.Fatalf("expected answer_not_in_options, got %q", vErr.Kind)
	}
}

func TestNewQuestion_MultiByteLabelAnswerMatch(t *testing.T) {
	options := []string{"Äpfel", "Birnen", "Çilek"}

	for _, answer := range []string{"Ä", "ä", "ç"} {
		if _, err := NewQuestion("Which fruit was mentioned first?", options, answer); err != nil {
			t.Fatalf("label answer %q should match: %v", answer, err)
		}
	}
	if _, err := NewQuestion("Which fruit was mentioned first?", options, "Ö"); err == nil {
		t.Fatal("expected error for unmatched multi-byte label")
	}
}

func TestNewQuestion_LabelWithoutMatchingOption(t *testing.T) {
	// "Z" is a letter but no option starts with it.
	if _, err := NewQuestion("What powers photosynthesis?", fourOptions(), "Z"); err == nil {
		t.Fatal("expected error for unmatched label")
	}
}

func TestNewQuestion_PromptTooShort(t *testing.T) {
	_, err := NewQuestion("Why?", fourOptions(), "A")
	if err == nil {
		t.Fatal("expected error for short prompt")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Kind != KindFieldBounds {
		t.Fatalf("expected field_bounds violation, got %v", err)
	}
}

func TestNewQuestion_OptionCount(t *testing.T) {
	prompt := "What powers photosynthesis?"

	if _, err := NewQuestion(prompt, []string{"only one"}, "only one"); err == nil {
		t.Fatal("expected error for a single option")
	}
	if _, err := NewQuestion(prompt, []string{"a", "b", "c", "d", "e", "f"}, "a"); err == nil {
		t.Fatal("expected error for six options")
	}
	if _, err := NewQuestion(prompt, []string{"yes", "no"}, "yes"); err != nil {
		t.Fatalf("two options should be valid: %v", err)
	}
}
