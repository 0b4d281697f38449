package handlers

import "github.com/neurosensemed-IA/Med-FlashCards/internal/models"

// SessionCookie carries the signed auth token; 30-day expiry.
const (
	SessionCookie       = "medflash_session"
	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Deck = models.Deck
type Question = models.Question
type SubjectProgress = models.SubjectProgress
