package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
)

var (
	// ErrNoArrayFound means the generated text contains no JSON array at all,
	// typically because the model ignored the output-format instructions.
	ErrNoArrayFound = errors.New("no JSON array found in generated text")

	// ErrEmptyArray means the model returned a well-formed but empty array.
	ErrEmptyArray = errors.New("generated array contains no questions")
)

// InvalidQuestionError reports which element of the generated array failed
// validation. A single bad element fails the whole parse; partial decks are
// never accepted.
type InvalidQuestionError struct {
	Index int
	Err   error
}

func (e *InvalidQuestionError) Error() string {
	return fmt.Sprintf("generated question %d is invalid: %v", e.Index, e.Err)
}

func (e *InvalidQuestionError) Unwrap() error { return e.Err }

// ParseGeneratedDeck extracts the question array from the model's free-form
// output. The array is taken as the substring between the first '[' and the
// last ']'; everything around it (prose, code fences) is ignored.
func ParseGeneratedDeck(raw string) ([]models.Question, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoArrayFound
	}

	var questions []models.Question
	if err := json.Unmarshal([]byte(raw[start:end+1]), &questions); err != nil {
		return nil, fmt.Errorf("generated text is not a valid question array: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrEmptyArray
	}

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, &InvalidQuestionError{Index: i, Err: err}
		}
	}
	return questions, nil
}
