package deck

// Presentation is the complete deliverable: the full ordered deck.
// A constructed Presentation always satisfies the structural contract
// [title, agenda, content..., conclusion] with at most one question.
type Presentation struct {
	Topic  string   `json:"topic"`
	Grade  string   `json:"grade"`
	Slides []*Slide `json:"slides"`
}

// NewPresentation validates the cross-slide invariants and constructs a
// Presentation. Checks run in order and the first violated rule is reported:
//
//   - slides[0] is a title slide
//   - slides[1] is an agenda slide
//   - the last slide is a conclusion slide
//   - everything in between is content and non-empty
//   - at most one slide carries a question, and only on a content slide
func NewPresentation(topic, grade string, slides []*Slide) (*Presentation, error) {
	if len(slides) < 3 {
		return nil, violation(KindStructure,
			"presentation must contain at least 3 slides, got %d", len(slides))
	}

	if slides[0].Type != SlideTitle {
		return nil, violation(KindStructure,
			"first slide must be of type %q, but got %q", SlideTitle, slides[0].Type)
	}
	if slides[1].Type != SlideAgenda {
		return nil, violation(KindStructure,
			"second slide must be of type %q, but got %q", SlideAgenda, slides[1].Type)
	}
	last := len(slides) - 1
	if slides[last].Type != SlideConclusion {
		return nil, violation(KindStructure,
			"last slide must be of type %q, but got %q", SlideConclusion, slides[last].Type)
	}

	middle := slides[2:last]
	if len(middle) == 0 {
		return nil, violation(KindStructure,
			"presentation must contain at least one content slide between agenda and conclusion")
	}
	for i, s := range middle {
		if s.Type != SlideContent {
			return nil, violation(KindStructure,
				"slide at position %d must be of type %q, but got %q", i+3, SlideContent, s.Type)
		}
	}

	// Per-slide validation already forbids questions on non-content slides;
	// recheck here so a hand-assembled slice cannot sneak one through.
	questions := 0
	for _, s := range slides {
		if s.Question == nil {
			continue
		}
		questions++
		if s.Type != SlideContent {
			return nil, violation(KindQuestionPlacement,
				"questions can only be included in content slides, but found one in a %s slide", s.Type)
		}
	}
	if questions > 1 {
		return nil, violation(KindStructure,
			"presentation can contain at most one question, but found %d", questions)
	}

	return &Presentation{Topic: topic, Grade: grade, Slides: slides}, nil
}
