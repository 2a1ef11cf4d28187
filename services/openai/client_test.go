package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"seoboost-backend/models"

	"github.com/stretchr/testify/assert"
)

// newChatServer returns a test server answering every chat-completions call
// with the given model payload wrapped in the OpenAI response envelope.
func newChatServer(t *testing.T, modelPayload interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, err := json.Marshal(modelPayload)
		if err != nil {
			t.Fatalf("Error marshaling the model payload: %s", err)
		}
		response := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": string(content)}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
}

func testRequest() models.GenerationRequest {
	return models.GenerationRequest{
		ProductName: "Wireless Headphones",
		Features:    []string{"noise cancellation", "30h battery"},
		Category:    "Electronics",
		Keywords:    []string{"wireless", "headphones"},
		Tone:        "professional",
		Length:      "medium",
	}
}

func TestGenerateDescription_Success(t *testing.T) {
	server := newChatServer(t, map[string]interface{}{
		"content":           "A great pair of headphones.",
		"seoScore":          7,
		"wordCount":         42,
		"keywordDensity":    10.5,
		"suggestedKeywords": []string{"bluetooth", "audio"},
	})
	defer server.Close()

	client := New("test-key", server.URL)
	result, err := client.GenerateDescription(context.Background(), testRequest())

	assert.NoError(t, err)
	assert.Equal(t, "A great pair of headphones.", result.Content)
	assert.Equal(t, 7, result.SeoScore)
	assert.Equal(t, 42, result.WordCount)
	assert.Equal(t, 10.5, result.KeywordDensity)
	assert.Equal(t, []string{"bluetooth", "audio"}, result.SuggestedKeywords)
}

func TestGenerateDescription_ClampsScoreAndDensity(t *testing.T) {
	server := newChatServer(t, map[string]interface{}{
		"content":        "Over-enthusiastic model output.",
		"seoScore":       15,
		"wordCount":      30,
		"keywordDensity": -3,
	})
	defer server.Close()

	client := New("test-key", server.URL)
	result, err := client.GenerateDescription(context.Background(), testRequest())

	assert.NoError(t, err)
	assert.Equal(t, 10, result.SeoScore)
	assert.Equal(t, float64(0), result.KeywordDensity)
	assert.Equal(t, []string{}, result.SuggestedKeywords)
}

func TestGenerateDescription_DensityClampedHigh(t *testing.T) {
	server := newChatServer(t, map[string]interface{}{
		"content":        "x",
		"seoScore":       3,
		"keywordDensity": 120,
	})
	defer server.Close()

	client := New("test-key", server.URL)
	result, err := client.GenerateDescription(context.Background(), testRequest())

	assert.NoError(t, err)
	assert.Equal(t, float64(100), result.KeywordDensity)
}

func TestGenerateDescription_MissingFieldsDefault(t *testing.T) {
	server := newChatServer(t, map[string]interface{}{
		"content": "Only content, nothing else.",
	})
	defer server.Close()

	client := New("test-key", server.URL)
	result, err := client.GenerateDescription(context.Background(), testRequest())

	assert.NoError(t, err)
	assert.Equal(t, 5, result.SeoScore)
	assert.Equal(t, 0, result.WordCount)
	assert.Equal(t, float64(0), result.KeywordDensity)
}

func TestGenerateDescription_QuotaExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"message": "You exceeded your current quota",
				"type":    "insufficient_quota",
				"code":    "insufficient_quota",
			},
		})
	}))
	defer server.Close()

	client := New("test-key", server.URL)
	_, err := client.GenerateDescription(context.Background(), testRequest())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrQuotaExceeded))
}

func TestGenerateDescription_OtherErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"message": "Incorrect API key provided",
				"type":    "invalid_request_error",
				"code":    "invalid_api_key",
			},
		})
	}))
	defer server.Close()

	client := New("bad-key", server.URL)
	_, err := client.GenerateDescription(context.Background(), testRequest())

	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrQuotaExceeded))
	assert.Contains(t, err.Error(), "failed to generate product description")
}

func TestSuggestKeywords_Success(t *testing.T) {
	server := newChatServer(t, map[string]interface{}{
		"keywords": []string{"wireless headphones", "bluetooth audio", "noise cancelling"},
	})
	defer server.Close()

	client := New("test-key", server.URL)
	keywords, err := client.SuggestKeywords(context.Background(), "Wireless Headphones", "Electronics")

	assert.NoError(t, err)
	assert.Len(t, keywords, 3)
	assert.Equal(t, "wireless headphones", keywords[0])
}

func TestSuggestKeywords_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "server error"}}`))
	}))
	defer server.Close()

	client := New("test-key", server.URL)
	_, err := client.SuggestKeywords(context.Background(), "Wireless Headphones", "Electronics")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to suggest keywords")
}

func TestCalculateSeoScore_Success(t *testing.T) {
	server := newChatServer(t, map[string]interface{}{
		"score":    8.4,
		"feedback": "Good keyword usage",
	})
	defer server.Close()

	client := New("test-key", server.URL)
	score := client.CalculateSeoScore(context.Background(), "Some description", []string{"keyword"})

	assert.Equal(t, 8, score)
}

func TestCalculateSeoScore_DefaultsOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "server error"}}`))
	}))
	defer server.Close()

	client := New("test-key", server.URL)
	score := client.CalculateSeoScore(context.Background(), "Some description", []string{"keyword"})

	assert.Equal(t, 5, score)
}

func TestCalculateSeoScore_ClampsScore(t *testing.T) {
	server := newChatServer(t, map[string]interface{}{
		"score": -2,
	})
	defer server.Close()

	client := New("test-key", server.URL)
	score := client.CalculateSeoScore(context.Background(), "Some description", nil)

	assert.Equal(t, 1, score)
}
