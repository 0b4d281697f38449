package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	extractService    *services.ExtractService
	generationService *services.GenerationService
}

func NewContentHandler(extractService *services.ExtractService, generationService *services.GenerationService) *ContentHandler {
	return &ContentHandler{extractService: extractService, generationService: generationService}
}

type ExtractResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// Extract godoc
// @Summary      Extract text from study material
// @Description  Upload a PDF, PPTX, plain-text or markdown file and get its extracted text
// @Tags         content
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Study material"
// @Success      200 {object} ExtractResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/content/extract [post]
func (h *ContentHandler) Extract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "select a file to process first"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = typeFromExtension(fileHeader.Filename)
	}
	if !h.extractService.Supported(contentType) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file type, upload .pdf, .pptx, .txt or .md"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read the uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read the uploaded file"})
		return
	}

	text := h.extractService.Extract(contentType, data)
	c.JSON(http.StatusOK, ExtractResponse{Filename: fileHeader.Filename, Text: text})
}

type ReviewRequest struct {
	Subject string `json:"subject" binding:"required"`
	Topic   string `json:"topic" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

type ReviewResponse struct {
	Review string `json:"review"`
}

// Review godoc
// @Summary      AI accuracy review
// @Description  Ask the model to review extracted study material for factual accuracy
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        request body ReviewRequest true "Material to review"
// @Success      200 {object} ReviewResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/content/review [post]
func (h *ContentHandler) Review(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.generationService.ReviewContent(req.Subject, req.Topic, req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "the review could not be completed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReviewResponse{Review: review})
}

func typeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return services.MimePDF
	case ".pptx":
		return services.MimePPTX
	case ".md":
		return services.MimeMarkdown
	case ".txt":
		return services.MimeText
	}
	return ""
}
