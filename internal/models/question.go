package models

import (
	"errors"
	"fmt"
)

// OptionLabels are the four labels every question must offer, in display order.
var OptionLabels = []string{"A", "B", "C", "D"}

type Question struct {
	Prompt      string            `json:"question"`
	Options     map[string]string `json:"options"`
	Correct     string            `json:"correct"`
	Explanation string            `json:"explanation"`
}

// Validate enforces the question invariants: a non-empty prompt, exactly the
// four A-D options with non-empty texts, and a correct label that is one of
// the option keys.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return errors.New("question text is empty")
	}
	if len(q.Options) != len(OptionLabels) {
		return fmt.Errorf("expected %d options, got %d", len(OptionLabels), len(q.Options))
	}
	for _, label := range OptionLabels {
		text, ok := q.Options[label]
		if !ok {
			return fmt.Errorf("missing option %q", label)
		}
		if text == "" {
			return fmt.Errorf("option %q has empty text", label)
		}
	}
	if _, ok := q.Options[q.Correct]; !ok {
		return fmt.Errorf("correct label %q is not among the options", q.Correct)
	}
	return nil
}

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string { return q.Options[q.Correct] }
