package deckgen

import (
	"fmt"
	"strings"

	"github.com/deckforge/deckforge/internal/deck"
)

// noContextPlaceholder is substituted when the request carries no free-text
// context, so prompts never contain an empty field.
const noContextPlaceholder = "No specific context provided."

func contextOrDefault(req deck.LessonRequest) string {
	if req.Context == "" {
		return noContextPlaceholder
	}
	return req.Context
}

const presentationSystemPrompt = `You are an expert educational content creator specializing in engaging and pedagogically sound lesson presentations.`

// buildPresentationSystemMessage renders the system prompt for one-shot
// whole-deck generation.
func buildPresentationSystemMessage(req deck.LessonRequest) string {
	var b strings.Builder

	b.WriteString(presentationSystemPrompt)
	b.WriteString("\n\nYour task is to generate a complete slide deck presentation based on the provided topic, student grade level, and context.\n")

	fmt.Fprintf(&b, `
CRITICAL REQUIREMENTS:

1. STRUCTURE: You MUST generate exactly this structure:
   - 1 Title slide (type: "title")
   - 1 Agenda slide (type: "agenda")
   - %d Content slides (type: "content")
   - 1 Conclusion slide (type: "conclusion")
   Total slides = %d.

2. TITLE SLIDE: an engaging title related to the topic; content names the topic prominently.

3. AGENDA SLIDE: bullet points listing the main points covered by the content slides. Must match the content slides you generate.

4. CONTENT SLIDES:
   - Each slide has a clear, objective title and concise educational content (bullet points or short paragraphs).
   - Some slides may include an optional "image" field with a search query for a relevant image.
   - Exactly ONE content slide (in the middle) may include a "question" field with:
     * prompt: a relevant learning question
     * options: 2-5 answer options (typically 4)
     * answer: the correct answer, matching one of the options

5. CONCLUSION SLIDE: summarize the key points and reinforce the learning objectives. Keep it concise.

6. GRADE LEVEL ADAPTATION: adjust language complexity, examples, and depth for: %s. Use age-appropriate vocabulary and concepts.

7. CONTEXT CONSIDERATION: incorporate the provided context and focus on the areas it mentions: %s

IMPORTANT:
- All content must be accurate and educational.
- Keep slides readable, not text-heavy.
- The question (if included) must be answerable from the content presented up to that point.
- Image search queries must be specific and relevant to the slide content.
`, req.NSlides, req.NSlides+3, req.Grade, contextOrDefault(req))

	return b.String()
}

// buildPresentationUserMessage renders the user prompt for one-shot
// whole-deck generation.
func buildPresentationUserMessage(req deck.LessonRequest) string {
	var b strings.Builder

	b.WriteString("Create a lesson presentation with the following details:\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Grade Level: %s\n", req.Grade)
	fmt.Fprintf(&b, "Number of Content Slides: %d\n", req.NSlides)
	fmt.Fprintf(&b, "Additional Context: %s\n", contextOrDefault(req))
	b.WriteString("\nGenerate a complete presentation following the structure and requirements specified in the system prompt.")

	return b.String()
}

const plannerSystemPrompt = `You are an educational content planner. Return ONLY valid JSON.`

// buildAgendaPlanningMessage asks for a bare JSON array of subtopic strings,
// one per content slide.
func buildAgendaPlanningMessage(req deck.LessonRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan the structure of a lesson about %q for %s students.\n", req.Topic, req.Grade)
	fmt.Fprintf(&b, "Additional context: %s\n\n", contextOrDefault(req))
	fmt.Fprintf(&b, "List exactly %d subtopics, one per content slide, ordered so the lesson builds logically.\n", req.NSlides)
	b.WriteString(`Respond with ONLY a JSON array of strings, no prose, no markdown. Example: ["Causes", "Key events", "Aftermath"]`)

	return b.String()
}

// buildSlideSystemMessage renders the shared system prompt for per-slide
// generation in streaming mode.
func buildSlideSystemMessage(req deck.LessonRequest) string {
	var b strings.Builder

	b.WriteString(presentationSystemPrompt)
	b.WriteString("\n\nYou generate ONE slide of a lesson presentation at a time.\n")
	fmt.Fprintf(&b, "Adjust language complexity, examples, and depth for: %s. Use age-appropriate vocabulary.\n", req.Grade)
	fmt.Fprintf(&b, "Incorporate this context where relevant: %s\n", contextOrDefault(req))
	b.WriteString("Keep slide content concise and readable: bullet points or short paragraphs, never text-heavy.")

	return b.String()
}

func buildTitleSlideMessage(req deck.LessonRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create the title slide for a lesson about %q.\n", req.Topic)
	b.WriteString(`The slide must have type "title", an engaging title related to the topic, and content that names the topic prominently. Keep it simple and clear. Do not include an image or a question.`)

	return b.String()
}

func buildAgendaSlideMessage(req deck.LessonRequest, subtopics []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create the agenda slide for a lesson about %q with %d content slides.\n", req.Topic, req.NSlides)
	b.WriteString("The lesson will cover these subtopics, in order:\n")
	for _, s := range subtopics {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString(`The slide must have type "agenda" and list the subtopics as bullet points. Do not include an image or a question.`)

	return b.String()
}

func buildContentSlideMessage(req deck.LessonRequest, p contentParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create content slide %d of %d for a lesson about %q.\n", p.slideNumber, req.NSlides, req.Topic)
	fmt.Fprintf(&b, "This slide covers the subtopic: %s\n\n", p.subtopic)
	b.WriteString(`The slide must have type "content", a clear objective title, and educational content as bullet points or short paragraphs.`)

	if p.includeImage {
		b.WriteString("\n- Include an \"image\" field with a relevant search query for an image.")
	} else {
		b.WriteString("\n- Do not include an image.")
	}
	if p.includeQuestion {
		b.WriteString("\n- Include a \"question\" field with a multiple choice question: a prompt, an options array with 4 choices, and an answer that matches one of the options.")
	} else {
		b.WriteString("\n- Do not include a question.")
	}

	return b.String()
}

func buildConclusionSlideMessage(req deck.LessonRequest, subtopics []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create the conclusion slide for a lesson about %q.\n", req.Topic)
	b.WriteString("The lesson covered these subtopics:\n")
	for _, s := range subtopics {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString(`The slide must have type "conclusion", summarize the key points, and reinforce the learning objectives. Keep it concise. Do not include an image or a question.`)

	return b.String()
}
