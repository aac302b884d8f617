package deck

import (
	"errors"
	"testing"
)

func mustSlide(t *testing.T, typ SlideType, title string, question *Question) *Slide {
	t.Helper()
	s, err := NewSlide(typ, title, "Some content.", "", question)
	if err != nil {
		t.Fatalf("building %s slide: %v", typ, err)
	}
	return s
}

func mustQuestion(t *testing.T) *Question {
	t.Helper()
	q, err := NewQuestion("Which planet is closest to the sun?", []string{"Mercury", "Venus"}, "Mercury")
	if err != nil {
		t.Fatalf("building question: %v", err)
	}
	return q
}

func validSlides(t *testing.T, contentCount int) []*Slide {
	t.Helper()
	slides := []*Slide{
		mustSlide(t, SlideTitle, "The Solar System", nil),
		mustSlide(t, SlideAgenda, "What we will cover", nil),
	}
	for i := 0; i < contentCount; i++ {
		slides = append(slides, mustSlide(t, SlideContent, "A planet", nil))
	}
	return append(slides, mustSlide(t, SlideConclusion, "Recap", nil))
}

func TestNewPresentation_Valid(t *testing.T) {
	p, err := NewPresentation("The Solar System", "4th grade", validSlides(t, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Slides) != 6 {
		t.Fatalf("expected 6 slides, got %d", len(p.Slides))
	}
}

func TestNewPresentation_MinimumShape(t *testing.T) {
	// One content slide is the smallest legal deck... but the structural
	// contract also needs title, agenda, and conclusion around it.
	if _, err := NewPresentation("Topic here", "4th grade", validSlides(t, 1)); err != nil {
		t.Fatalf("4-slide deck should be valid: %v", err)
	}
}

func TestNewPresentation_TooFewSlides(t *testing.T) {
	slides := []*Slide{
		mustSlide(t, SlideTitle, "Title", nil),
		mustSlide(t, SlideConclusion, "End", nil),
	}
	_, err := NewPresentation("Topic here", "4th grade", slides)
	if err == nil {
		t.Fatal("expected error for 2-slide deck")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Kind != KindStructure {
		t.Fatalf("expected structure violation, got %v", err)
	}
}

func TestNewPresentation_OrderingViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]*Slide)
	}{
		{"first slide not title", func(s []*Slide) { s[0] = mustSlide(t, SlideContent, "Oops", nil) }},
		{"second slide not agenda", func(s []*Slide) { s[1] = mustSlide(t, SlideContent, "Oops", nil) }},
		{"last slide not conclusion", func(s []*Slide) { s[len(s)-1] = mustSlide(t, SlideContent, "Oops", nil) }},
		{"title slide in the middle", func(s []*Slide) { s[2] = mustSlide(t, SlideTitle, "Oops", nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slides := validSlides(t, 3)
			tt.mutate(slides)
			_, err := NewPresentation("Topic here", "4th grade", slides)
			if err == nil {
				t.Fatal("expected error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Kind != KindStructure {
				t.Fatalf("expected structure violation, got %v", err)
			}
		})
	}
}

func TestNewPresentation_NoContentSlides(t *testing.T) {
	slides := []*Slide{
		mustSlide(t, SlideTitle, "Title", nil),
		mustSlide(t, SlideAgenda, "Agenda", nil),
		mustSlide(t, SlideConclusion, "End", nil),
	}
	if _, err := NewPresentation("Topic here", "4th grade", slides); err == nil {
		t.Fatal("expected error for deck without content slides")
	}
}

func TestNewPresentation_OneQuestionAllowed(t *testing.T) {
	slides := validSlides(t, 3)
	slides[3] = mustSlide(t, SlideContent, "Quiz", mustQuestion(t))

	if _, err := NewPresentation("Topic here", "4th grade", slides); err != nil {
		t.Fatalf("one question should be valid: %v", err)
	}
}

func TestNewPresentation_TwoQuestionsRejected(t *testing.T) {
	slides := validSlides(t, 3)
	slides[2] = mustSlide(t, SlideContent, "Quiz one", mustQuestion(t))
	slides[3] = mustSlide(t, SlideContent, "Quiz two", mustQuestion(t))

	_, err := NewPresentation("Topic here", "4th grade", slides)
	if err == nil {
		t.Fatal("expected error for two questions")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Kind != KindStructure {
		t.Fatalf("expected structure violation, got %v", err)
	}
}

func TestNewPresentation_HandAssembledQuestionOnConclusion(t *testing.T) {
	// NewSlide forbids this, so assemble the slide directly to prove the
	// cross-slide check catches it too.
	slides := validSlides(t, 2)
	slides[len(slides)-1] = &Slide{
		Type:     SlideConclusion,
		Title:    "Recap",
		Content:  "Some content.",
		Question: mustQuestion(t),
	}

	_, err := NewPresentation("Topic here", "4th grade", slides)
	if err == nil {
		t.Fatal("expected error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Kind != KindQuestionPlacement {
		t.Fatalf("expected question_placement violation, got %v", err)
	}
}
