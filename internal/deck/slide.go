package deck

// SlideType is the structural role a slide plays in the deck.
type SlideType string

const (
	SlideTitle      SlideType = "title"
	SlideAgenda     SlideType = "agenda"
	SlideContent    SlideType = "content"
	SlideConclusion SlideType = "conclusion"
)

// Valid reports whether t is one of the four known slide types.
func (t SlideType) Valid() bool {
	switch t {
	case SlideTitle, SlideAgenda, SlideContent, SlideConclusion:
		return true
	}
	return false
}

// Bounds for Slide fields.
const (
	SlideTitleMaxLen = 200
	SlideImageMaxLen = 200
)

// Slide is one page of the output deck. Image, when set, is a search query
// for an image provider, not binary data. Question may only be set on
// content slides.
type Slide struct {
	Type     SlideType `json:"type"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Image    string    `json:"image,omitempty"`
	Question *Question `json:"question,omitempty"`
}

// NewSlide validates and constructs a Slide. An empty image means no image
// suggestion.
func NewSlide(typ SlideType, title, content, image string, question *Question) (*Slide, error) {
	if !typ.Valid() {
		return nil, violation(KindFieldBounds, "unknown slide type %q", typ)
	}
	if len(title) < 1 || len(title) > SlideTitleMaxLen {
		return nil, violation(KindFieldBounds,
			"slide title must be 1-%d characters, got %d", SlideTitleMaxLen, len(title))
	}
	if content == "" {
		return nil, violation(KindFieldBounds, "slide content must not be empty")
	}
	if len(image) > SlideImageMaxLen {
		return nil, violation(KindFieldBounds,
			"slide image query must be at most %d characters, got %d", SlideImageMaxLen, len(image))
	}

	if question != nil && typ != SlideContent {
		return nil, violation(KindQuestionPlacement,
			"questions can only be included in content slides, not in %s slides", typ)
	}

	return &Slide{
		Type:     typ,
		Title:    title,
		Content:  content,
		Image:    image,
		Question: question,
	}, nil
}
