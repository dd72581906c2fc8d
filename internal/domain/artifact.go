package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ArtifactKind tags the two things the pipeline can produce. Each kind
// determines the prompt mode used and the owner field it is attached to.
type ArtifactKind int

const (
	// KindFlashcard produces a Flashcard from a key points prompt.
	KindFlashcard ArtifactKind = iota + 1
	// KindQuiz produces a Quiz from a multiple choice prompt.
	KindQuiz
)

func (k ArtifactKind) String() string {
	switch k {
	case KindFlashcard:
		return "flashcard"
	case KindQuiz:
		return "quiz"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Mode returns the prompt mode that produces artifacts of this kind.
func (k ArtifactKind) Mode() Mode {
	switch k {
	case KindFlashcard:
		return ModeKeyPoints
	case KindQuiz:
		return ModeMultipleChoice
	default:
		return 0
	}
}

// Valid reports whether k is one of the defined kinds.
func (k ArtifactKind) Valid() bool {
	return k == KindFlashcard || k == KindQuiz
}

// Artifact is a generated item ready to be attached to an owner.
type Artifact interface {
	ArtifactID() string
	Kind() ArtifactKind
	// Text is the raw model output the artifact wraps.
	Text() string
}

// Flashcard holds a set of key points generated for a topic. Content is
// the model's reply stored as-is; it is expected, but not guaranteed, to
// be JSON.
type Flashcard struct {
	ID      string `json:"_id"`
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

// NewFlashcard creates a flashcard with a fresh identifier.
func NewFlashcard(topic, content string) *Flashcard {
	return &Flashcard{ID: uuid.NewString(), Topic: topic, Content: content}
}

func (f *Flashcard) ArtifactID() string { return f.ID }
func (f *Flashcard) Kind() ArtifactKind { return KindFlashcard }
func (f *Flashcard) Text() string       { return f.Content }

// Quiz holds a generated question set, stored as the model returned it.
type Quiz struct {
	ID      string `json:"_id"`
	Quizzes string `json:"quizzes"`
}

// NewQuiz creates a quiz with a fresh identifier.
func NewQuiz(content string) *Quiz {
	return &Quiz{ID: uuid.NewString(), Quizzes: content}
}

func (q *Quiz) ArtifactID() string { return q.ID }
func (q *Quiz) Kind() ArtifactKind { return KindQuiz }
func (q *Quiz) Text() string       { return q.Quizzes }

// NewArtifact wraps generated text as an artifact of the given kind. The
// topic is only recorded on flashcards.
func NewArtifact(kind ArtifactKind, topic, content string) (Artifact, error) {
	switch kind {
	case KindFlashcard:
		return NewFlashcard(topic, content), nil
	case KindQuiz:
		return NewQuiz(content), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
