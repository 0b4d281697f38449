package handlers

import (
	"net/http"
	"sort"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/services"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progressTracker *services.ProgressTracker
}

func NewProgressHandler(progressTracker *services.ProgressTracker) *ProgressHandler {
	return &ProgressHandler{progressTracker: progressTracker}
}

type ProgressResponse struct {
	Subjects []SubjectProgress `json:"subjects"`
	Quote    string            `json:"quote"`
}

// Overview godoc
// @Summary      Per-subject progress
// @Description  Return the student's level and XP in every subject studied so far
// @Tags         progress
// @Produce      json
// @Success      200 {object} ProgressResponse
// @Router       /api/v1/progress [get]
func (h *ProgressHandler) Overview(c *gin.Context) {
	username := c.GetString("username")

	overview := h.progressTracker.Overview(c.Request.Context(), username)
	subjects := make([]SubjectProgress, 0, len(overview))
	for _, p := range overview {
		subjects = append(subjects, p)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Subject < subjects[j].Subject })

	c.JSON(http.StatusOK, ProgressResponse{
		Subjects: subjects,
		Quote:    services.RandomQuote(),
	})
}
