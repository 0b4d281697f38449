package services

import (
	"errors"
	"sync"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"

	"github.com/google/uuid"
)

// PassThreshold is the score at or above which an exam attempt counts as
// passed for leveling purposes.
const PassThreshold = 80.0

const (
	ExamStatusInProgress = "in_progress"
	ExamStatusRevealed   = "revealed"
	ExamStatusCompleted  = "completed"
)

var (
	ErrNoActiveExam = errors.New("no active exam session")
	ErrExamRunning  = errors.New("an exam is already in progress")
	ErrEmptyAnswer  = errors.New("an option must be selected")
	ErrNotRevealed  = errors.New("answer the current question first")
	ErrExamFinished = errors.New("the exam is already completed")
)

// ExamSession is the in-memory lifecycle of one attempt at a deck. It is
// never persisted: abandoning it from any state loses the record and nothing
// else.
type ExamSession struct {
	ID       string
	Username string
	Deck     models.Deck

	Status          string
	Index           int
	Results         []models.AnswerResult
	ShowExplanation bool

	score float64 // computed once, on completion
}

// CurrentQuestion returns the question at the session's index.
func (e *ExamSession) CurrentQuestion() models.Question {
	return e.Deck.Questions[e.Index]
}

// Score is only meaningful once the session is completed.
func (e *ExamSession) Score() float64 { return e.score }

func (e *ExamSession) Passed() bool { return e.score >= PassThreshold }

func (e *ExamSession) CorrectCount() int {
	n := 0
	for _, r := range e.Results {
		if r.IsCorrect {
			n++
		}
	}
	return n
}

// ExamService keeps at most one active session per user. Users touch
// disjoint entries; the mutex only guards the registry map.
type ExamService struct {
	mu       sync.Mutex
	sessions map[string]*ExamSession
}

func NewExamService() *ExamService {
	return &ExamService{sessions: make(map[string]*ExamSession)}
}

// Start opens a new session on the deck, replacing nothing: starting while a
// session exists is an error so a half-finished run is never silently lost.
// The deck must satisfy the deck invariant; an empty deck never starts.
func (s *ExamService) Start(username string, deck models.Deck) (*ExamSession, error) {
	if err := deck.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[username]; ok && existing.Status != ExamStatusCompleted {
		return nil, ErrExamRunning
	}

	session := &ExamSession{
		ID:       uuid.NewString(),
		Username: username,
		Deck:     deck,
		Status:   ExamStatusInProgress,
	}
	s.sessions[username] = session
	return session, nil
}

func (s *ExamService) Get(username string) (*ExamSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[username]
	if !ok {
		return nil, ErrNoActiveExam
	}
	return session, nil
}

// SubmitAnswer records the answer for the current question and reveals the
// explanation. Correctness is string equality against the correct option's
// text. Submitting again for an index that already has a result returns the
// recorded result without appending a second one.
func (s *ExamService) SubmitAnswer(username, selected string) (*models.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[username]
	if !ok {
		return nil, ErrNoActiveExam
	}
	if selected == "" {
		return nil, ErrEmptyAnswer
	}

	// Idempotent by index: a duplicate submission changes nothing.
	if len(session.Results) > session.Index {
		return &session.Results[session.Index], nil
	}
	if session.Status != ExamStatusInProgress {
		return nil, ErrExamFinished
	}

	question := session.CurrentQuestion()
	result := models.AnswerResult{
		IsCorrect:   selected == question.CorrectText(),
		Selected:    selected,
		CorrectText: question.CorrectText(),
	}
	session.Results = append(session.Results, result)
	session.Status = ExamStatusRevealed
	session.ShowExplanation = true

	return &session.Results[session.Index], nil
}

// Advance moves past a revealed answer: to the next question, or to the
// terminal Completed state on the last one, at which point the score is
// computed once.
func (s *ExamService) Advance(username string) (*ExamSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[username]
	if !ok {
		return nil, false, ErrNoActiveExam
	}
	if session.Status != ExamStatusRevealed {
		if session.Status == ExamStatusCompleted {
			return nil, false, ErrExamFinished
		}
		return nil, false, ErrNotRevealed
	}

	session.ShowExplanation = false
	if session.Index+1 < len(session.Deck.Questions) {
		session.Index++
		session.Status = ExamStatusInProgress
		return session, false, nil
	}

	session.Status = ExamStatusCompleted
	session.score = float64(session.CorrectCount()) / float64(len(session.Deck.Questions)) * 100
	return session, true, nil
}

// Abandon discards the user's session from any state. No partial score is
// persisted.
func (s *ExamService) Abandon(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, username)
}
