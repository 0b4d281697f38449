package handlers

import (
	"net/http"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

type CatalogResponse struct {
	Subjects []string                        `json:"subjects"`
	Topics   map[string]services.TopicVisual `json:"topics"`
	Quote    string                          `json:"quote"`
}

// Get godoc
// @Summary      Study catalog
// @Description  Subjects, topics with their visuals, and a motivational quote
// @Tags         catalog
// @Produce      json
// @Success      200 {object} CatalogResponse
// @Router       /api/v1/catalog [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogResponse{
		Subjects: services.Subjects,
		Topics:   services.TopicVisuals,
		Quote:    services.RandomQuote(),
	})
}
