package handlers

import (
	"errors"
	"net/http"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/services"

	"github.com/gin-gonic/gin"
)

type DeckHandler struct {
	deckRepo          *services.DeckRepository
	generationService *services.GenerationService
	progressTracker   *services.ProgressTracker
}

func NewDeckHandler(deckRepo *services.DeckRepository, generationService *services.GenerationService, progressTracker *services.ProgressTracker) *DeckHandler {
	return &DeckHandler{
		deckRepo:          deckRepo,
		generationService: generationService,
		progressTracker:   progressTracker,
	}
}

// List godoc
// @Summary      List decks
// @Description  Return all of the student's decks, merged across both storage tiers
// @Tags         decks
// @Produce      json
// @Success      200 {object} map[string]Deck
// @Router       /api/v1/decks [get]
func (h *DeckHandler) List(c *gin.Context) {
	username := c.GetString("username")
	c.JSON(http.StatusOK, h.deckRepo.LoadAll(c.Request.Context(), username))
}

type GenerateDeckRequest struct {
	Name       string `json:"name" binding:"required,max=255" example:"Cardio week 3"`
	Subject    string `json:"subject" binding:"required" example:"Physiology"`
	Topic      string `json:"topic" binding:"required" example:"Cardiovascular"`
	Count      int    `json:"count" binding:"omitempty,min=1,max=20" example:"5"`
	SourceText string `json:"source_text" binding:"required"`
}

// Generate godoc
// @Summary      Generate a deck
// @Description  Build a prompt from the subject, topic, student level and source text, call the model and persist the parsed deck
// @Tags         decks
// @Accept       json
// @Produce      json
// @Param        request body GenerateDeckRequest true "Generation parameters"
// @Success      201 {object} Deck
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/decks/generate [post]
func (h *DeckHandler) Generate(c *gin.Context) {
	var req GenerateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !services.ValidSubject(req.Subject) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown subject"})
		return
	}
	if !services.ValidTopic(req.Topic) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown topic"})
		return
	}
	if req.Count == 0 {
		req.Count = 5
	}

	username := c.GetString("username")

	// Deck names are unique per user; the repository itself would silently
	// overwrite, so the collision check happens here.
	if _, exists := h.deckRepo.LoadAll(c.Request.Context(), username)[req.Name]; exists {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "a deck with that name already exists"})
		return
	}

	level := h.progressTracker.GetProgress(c.Request.Context(), username, req.Subject).Level

	raw, err := h.generationService.GenerateDeckText(req.Subject, req.Topic, level, req.SourceText, req.Count)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "question generation failed: " + err.Error()})
		return
	}

	questions, err := services.ParseGeneratedDeck(raw)
	if err != nil {
		var invalid *services.InvalidQuestionError
		switch {
		case errors.Is(err, services.ErrNoArrayFound):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "the AI did not return a question list, try again"})
		case errors.As(err, &invalid):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: invalid.Error()})
		default:
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "the AI did not return a valid question list: " + err.Error()})
		}
		return
	}

	if !h.deckRepo.Save(c.Request.Context(), username, req.Name, questions, req.Subject, req.Topic) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "the generated deck could not be saved"})
		return
	}

	deck := h.deckRepo.LoadAll(c.Request.Context(), username)[req.Name]
	c.JSON(http.StatusCreated, deck)
}

// Delete godoc
// @Summary      Delete a deck
// @Description  Remove the deck from both storage tiers
// @Tags         decks
// @Produce      json
// @Param        name path string true "Deck name"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/decks/{name} [delete]
func (h *DeckHandler) Delete(c *gin.Context) {
	username := c.GetString("username")
	name := c.Param("name")

	if !h.deckRepo.Delete(c.Request.Context(), username, name) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "deck not found"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "deck deleted"})
}
