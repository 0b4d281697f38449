package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
)

// maxSourceChars bounds how much of the uploaded material is sent to the
// model per request.
const maxSourceChars = 8000

// GenerationService talks to an OpenAI-compatible chat-completions endpoint.
// It only builds prompts and returns the model's raw text; turning that text
// into a deck is the parser's job (ParseGeneratedDeck).
type GenerationService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewGenerationService(apiKey, apiURL, model string) *GenerationService {
	return &GenerationService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *GenerationService) IsAvailable() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const deckFormatPrompt = `You are a question writer for medical students. Respond with ONLY a JSON array (no markdown, no code fences, no explanations) in the following format:

[
  {
    "question": "Question text?",
    "options": {"A": "First option", "B": "Second option", "C": "Third option", "D": "Fourth option"},
    "correct": "A",
    "explanation": "Why the correct option is correct."
  }
]

Rules:
- Every question must have exactly the four options A, B, C and D
- "correct" must be one of the option keys
- Base every question strictly on the source material you are given
- Write in the same language as the source material
- Return ONLY the JSON array, nothing else`

// GenerateDeckText asks the model for a batch of multiple-choice questions
// and returns its raw response text.
func (s *GenerationService) GenerateDeckText(subject, topic string, level models.Level, sourceText string, count int) (string, error) {
	parts := []string{
		fmt.Sprintf("Role: you are a medical school professor of %s writing board-style review questions.", subject),
		fmt.Sprintf("Context: %s applied to the %s system.", subject, topic),
		fmt.Sprintf("The student's current level in this subject is %s; match the difficulty to it.", level),
		fmt.Sprintf("Generate exactly %d multiple-choice questions.", count),
		"Source material:",
		truncateSource(sourceText),
	}
	return s.chat(deckFormatPrompt, strings.Join(parts, "\n"))
}

// ReviewContent asks the model for an accuracy review of extracted study
// material and returns its free-text assessment.
func (s *GenerationService) ReviewContent(subject, topic, text string) (string, error) {
	parts := []string{
		fmt.Sprintf("Role: you are a professor of %s and an expert scientific reviewer.", subject),
		fmt.Sprintf("Context: %s applied to the %s system.", subject, topic),
		"Review the following study material for factual accuracy. Point out any errors, outdated claims or important omissions, then give a short overall verdict.",
		"Material:",
		truncateSource(text),
	}
	return s.chat("You are a rigorous medical content reviewer.", strings.Join(parts, "\n"))
}

func (s *GenerationService) chat(systemPrompt, userPrompt string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("AI generation is not configured")
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func truncateSource(text string) string {
	if len(text) > maxSourceChars {
		return text[:maxSourceChars]
	}
	return text
}
