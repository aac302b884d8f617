package deck

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewSlide_Valid(t *testing.T) {
	s, err := NewSlide(SlideContent, "Chlorophyll", "It is green.", "chlorophyll under microscope", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type != SlideContent {
		t.Fatalf("unexpected type: %q", s.Type)
	}
}

func TestNewSlide_UnknownType(t *testing.T) {
	_, err := NewSlide(SlideType("summary"), "Title", "Content", "", nil)
	if err == nil {
		t.Fatal("expected error for unknown slide type")
	}
}

func TestNewSlide_FieldBounds(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		image   string
	}{
		{"empty title", "", "Content", ""},
		{"title too long", strings.Repeat("t", 201), "Content", ""},
		{"empty content", "Title", "", ""},
		{"image query too long", "Title", "Content", strings.Repeat("i", 201)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSlide(SlideContent, tt.title, tt.content, tt.image, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Kind != KindFieldBounds {
				t.Fatalf("expected field_bounds violation, got %v", err)
			}
		})
	}
}

func TestNewSlide_QuestionOnContentSlide(t *testing.T) {
	q, err := NewQuestion("What color is chlorophyll?", []string{"green", "red"}, "green")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewSlide(SlideContent, "Quiz", "Pick one.", "", q); err != nil {
		t.Fatalf("question on content slide should be valid: %v", err)
	}
}

func TestNewSlide_QuestionRejectedOnOtherTypes(t *testing.T) {
	q, err := NewQuestion("What color is chlorophyll?", []string{"green", "red"}, "green")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, typ := range []SlideType{SlideTitle, SlideAgenda, SlideConclusion} {
		_, err := NewSlide(typ, "Title", "Content", "", q)
		if err == nil {
			t.Fatalf("expected error for question on %s slide", typ)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Kind != KindQuestionPlacement {
			t.Fatalf("expected question_placement violation, got %v", err)
		}
	}
}

func TestSlide_JSONOmitsEmptyOptionals(t *testing.T) {
	s, err := NewSlide(SlideTitle, "The Water Cycle", "An introduction.", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "image") {
		t.Fatalf("empty image should be omitted: %s", raw)
	}
	if strings.Contains(string(raw), "question") {
		t.Fatalf("nil question should be omitted: %s", raw)
	}
}

func TestSlideType_Valid(t *testing.T) {
	for _, typ := range []SlideType{SlideTitle, SlideAgenda, SlideContent, SlideConclusion} {
		if !typ.Valid() {
			t.Fatalf("%q should be valid", typ)
		}
	}
	if SlideType("intro").Valid() {
		t.Fatal("unknown type should not be valid")
	}
}
