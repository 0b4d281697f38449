package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, reply string, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateDeckText_ReturnsRawModelOutput(t *testing.T) {
	var captured chatRequest
	server := chatServer(t, singleQuestionArray, &captured)
	defer server.Close()

	svc := NewGenerationService("test-key", server.URL, "test-model")

	raw, err := svc.GenerateDeckText("Physiology", "Cardiovascular", models.LevelIntern, "the heart is a pump", 5)
	require.NoError(t, err)
	assert.Equal(t, singleQuestionArray, raw)

	require.Len(t, captured.Messages, 2)
	user := captured.Messages[1].Content
	assert.Contains(t, user, "Physiology")
	assert.Contains(t, user, "Cardiovascular")
	assert.Contains(t, user, "Intern")
	assert.Contains(t, user, "exactly 5 multiple-choice questions")
	assert.Contains(t, user, "the heart is a pump")
}

func TestGenerateDeckText_TruncatesSourceText(t *testing.T) {
	var captured chatRequest
	server := chatServer(t, "[]", &captured)
	defer server.Close()

	svc := NewGenerationService("test-key", server.URL, "test-model")

	source := strings.Repeat("a", maxSourceChars) + "TAIL-MARKER"
	_, err := svc.GenerateDeckText("Anatomy", "General", models.LevelNovice, source, 3)
	require.NoError(t, err)

	assert.NotContains(t, captured.Messages[1].Content, "TAIL-MARKER")
}

func TestGenerate_UnconfiguredKeyFails(t *testing.T) {
	svc := NewGenerationService("", "http://unused", "test-model")

	assert.False(t, svc.IsAvailable())

	_, err := svc.GenerateDeckText("Anatomy", "General", models.LevelNovice, "text", 3)
	assert.Error(t, err)
}

func TestChat_UpstreamErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer server.Close()

	svc := NewGenerationService("test-key", server.URL, "test-model")

	_, err := svc.ReviewContent("Anatomy", "General", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
