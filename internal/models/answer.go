package models

// AnswerResult records the outcome of one answered question within an exam
// run. Results are ephemeral: they live in the exam session only and are
// never persisted.
type AnswerResult struct {
	IsCorrect   bool   `json:"is_correct"`
	Selected    string `json:"selected"`
	CorrectText string `json:"correct_text"`
}
