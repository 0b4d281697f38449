package handlers

import (
	"errors"
	"net/http"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/services"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	examService     *services.ExamService
	deckRepo        *services.DeckRepository
	progressTracker *services.ProgressTracker
}

func NewExamHandler(examService *services.ExamService, deckRepo *services.DeckRepository, progressTracker *services.ProgressTracker) *ExamHandler {
	return &ExamHandler{
		examService:     examService,
		deckRepo:        deckRepo,
		progressTracker: progressTracker,
	}
}

// QuestionView is a question as shown during an exam: the correct label and
// explanation stay server-side until the answer is submitted.
type QuestionView struct {
	Index   int               `json:"index"`
	Total   int               `json:"total"`
	Prompt  string            `json:"prompt"`
	Options map[string]string `json:"options"`
}

type ExamStateResponse struct {
	SessionID string        `json:"session_id"`
	DeckName  string        `json:"deck_name"`
	Subject   string        `json:"subject"`
	Status    string        `json:"status"`
	Question  *QuestionView `json:"question,omitempty"`
	Answered  int           `json:"answered"`
	Score     *float64      `json:"score,omitempty"`
}

type StartExamRequest struct {
	DeckName string `json:"deck_name" binding:"required"`
}

// Start godoc
// @Summary      Start an exam
// @Description  Open a study run on one of the student's decks
// @Tags         exam
// @Accept       json
// @Produce      json
// @Param        request body StartExamRequest true "Deck to study"
// @Success      201 {object} ExamStateResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exam/start [post]
func (h *ExamHandler) Start(c *gin.Context) {
	var req StartExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	username := c.GetString("username")

	deck, ok := h.deckRepo.LoadAll(c.Request.Context(), username)[req.DeckName]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "deck not found"})
		return
	}

	session, err := h.examService.Start(username, deck)
	if errors.Is(err, services.ErrExamRunning) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "finish or abandon the current exam first"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, examState(session))
}

// State godoc
// @Summary      Current exam state
// @Tags         exam
// @Produce      json
// @Success      200 {object} ExamStateResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exam [get]
func (h *ExamHandler) State(c *gin.Context) {
	session, err := h.examService.Get(c.GetString("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active exam"})
		return
	}
	c.JSON(http.StatusOK, examState(session))
}

type AnswerRequest struct {
	Selected string `json:"selected" binding:"required"`
}

type AnswerResponse struct {
	Result      models.AnswerResult `json:"result"`
	Explanation string              `json:"explanation"`
}

// Answer godoc
// @Summary      Submit an answer
// @Description  Record the selected option for the current question and reveal the explanation
// @Tags         exam
// @Accept       json
// @Produce      json
// @Param        request body AnswerRequest true "Selected option text"
// @Success      200 {object} AnswerResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exam/answer [post]
func (h *ExamHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	username := c.GetString("username")
	result, err := h.examService.SubmitAnswer(username, req.Selected)
	if errors.Is(err, services.ErrNoActiveExam) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active exam"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, _ := h.examService.Get(username)
	c.JSON(http.StatusOK, AnswerResponse{
		Result:      *result,
		Explanation: session.CurrentQuestion().Explanation,
	})
}

type ExamFinishedResponse struct {
	Completed    bool    `json:"completed"`
	Score        float64 `json:"score"`
	Passed       bool    `json:"passed"`
	CorrectCount int     `json:"correct_count"`
	Total        int     `json:"total"`
	Level        string  `json:"level"`
	XP           int     `json:"xp"`
	Message      string  `json:"message"`
}

// Next godoc
// @Summary      Advance the exam
// @Description  Move to the next question, or finish the exam and record the outcome against the subject's progress
// @Tags         exam
// @Produce      json
// @Success      200 {object} ExamStateResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exam/next [post]
func (h *ExamHandler) Next(c *gin.Context) {
	username := c.GetString("username")

	session, completed, err := h.examService.Advance(username)
	if errors.Is(err, services.ErrNoActiveExam) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active exam"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if !completed {
		c.JSON(http.StatusOK, examState(session))
		return
	}

	progress, message := h.progressTracker.RecordOutcome(
		c.Request.Context(), username, session.Deck.Subject, session.Passed())
	if message == "" {
		message = "Exam completed."
	}

	c.JSON(http.StatusOK, ExamFinishedResponse{
		Completed:    true,
		Score:        session.Score(),
		Passed:       session.Passed(),
		CorrectCount: session.CorrectCount(),
		Total:        len(session.Deck.Questions),
		Level:        string(progress.Level),
		XP:           progress.XP,
		Message:      message,
	})
}

// Abandon godoc
// @Summary      Abandon the exam
// @Description  Discard the active session without persisting any partial score
// @Tags         exam
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/v1/exam/abandon [post]
func (h *ExamHandler) Abandon(c *gin.Context) {
	h.examService.Abandon(c.GetString("username"))
	c.JSON(http.StatusOK, MessageResponse{Message: "exam abandoned"})
}

func examState(session *services.ExamSession) ExamStateResponse {
	resp := ExamStateResponse{
		SessionID: session.ID,
		DeckName:  session.Deck.Name,
		Subject:   session.Deck.Subject,
		Status:    session.Status,
		Answered:  len(session.Results),
	}

	if session.Status == services.ExamStatusCompleted {
		score := session.Score()
		resp.Score = &score
		return resp
	}

	q := session.CurrentQuestion()
	resp.Question = &QuestionView{
		Index:   session.Index,
		Total:   len(session.Deck.Questions),
		Prompt:  q.Prompt,
		Options: q.Options,
	}
	return resp
}
