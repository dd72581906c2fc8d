package generation

import (
	"strconv"
	"strings"

	"github.com/Jatin020403/quiz-api/internal/domain"
)

// Delimiters around the caller's text. The text is inserted verbatim
// between them so the model can tell instructions from material; only a
// close marker inside the text is rewritten to escapedTextClose.
const (
	sourceTextOpen   = "<<<TEXT"
	sourceTextClose  = "TEXT>>>"
	escapedTextClose = "TEXT> >>"
)

// KeyPointsExample is the worked example appended to key points prompts.
const KeyPointsExample = `{
  "key_points_array": [
    "Plants convert light energy into chemical energy.",
    "Chlorophyll absorbs mostly red and blue light.",
    "Oxygen is released as a by-product."
  ],
  "number_of_key_points": 3
}`

// MultipleChoiceExample is the worked example appended to quiz prompts.
const MultipleChoiceExample = `{
  "questions": [
    {
      "question": "Which pigment absorbs light during photosynthesis?",
      "options": ["Chlorophyll", "Hemoglobin", "Keratin", "Melanin"],
      "answer": 0
    },
    {
      "question": "Which gas is released as a by-product of photosynthesis?",
      "options": ["Nitrogen", "Carbon dioxide", "Oxygen", "Methane"],
      "answer": 2
    }
  ]
}`

// BuildPrompt renders the model prompt for req. It never fails; request
// invariants are enforced when the request is constructed.
func BuildPrompt(req domain.GenerationRequest) string {
	count := strconv.Itoa(req.Count())

	var b strings.Builder
	switch req.Mode() {
	case domain.ModeMultipleChoice:
		b.WriteString("Generate a JSON object containing exactly ")
		b.WriteString(count)
		b.WriteString(" multiple choice questions based on the text below.\n")
		b.WriteString("The object has a single field `questions`, an array of ")
		b.WriteString(count)
		b.WriteString(" objects with the following fields:\n")
		b.WriteString("* question: the question itself, derived from the text.\n")
		b.WriteString("* options: an array of exactly four possible answers.\n")
		b.WriteString("* answer: the zero-based index of the correct entry in options.\n")
		b.WriteString("Use only these fields and reply with JSON only.\n\n")
		writeSourceText(&b, req.SourceText())
		b.WriteString("\nExample:\n")
		b.WriteString(MultipleChoiceExample)
	default:
		b.WriteString("Extract ")
		b.WriteString(count)
		b.WriteString(" key points from the text below. Present them as a JSON object with two fields:\n")
		b.WriteString("* key_points_array: an array containing each key point as a string.\n")
		b.WriteString("* number_of_key_points: the number of elements in key_points_array, which must be ")
		b.WriteString(count)
		b.WriteString(".\n")
		b.WriteString("Use only these fields and reply with JSON only.\n\n")
		writeSourceText(&b, req.SourceText())
		b.WriteString("\nExample:\n")
		b.WriteString(KeyPointsExample)
	}
	b.WriteString("\n")
	return b.String()
}

func writeSourceText(b *strings.Builder, text string) {
	b.WriteString("Text:\n")
	b.WriteString(sourceTextOpen)
	b.WriteString("\n")
	b.WriteString(strings.ReplaceAll(text, sourceTextClose, escapedTextClose))
	b.WriteString("\n")
	b.WriteString(sourceTextClose)
	b.WriteString("\n")
}
