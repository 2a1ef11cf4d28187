package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"seoboost-backend/models"
	"seoboost-backend/utils"
)

const defaultBaseURL = "https://api.openai.com/v1"

// ErrQuotaExceeded reports that the provider refused the call because the
// account's quota or billing is exhausted. Callers use it to switch to the
// demo fallback instead of failing hard.
var ErrQuotaExceeded = errors.New("OpenAI API quota exceeded")

// Client is a thin wrapper around the OpenAI chat-completions endpoint.
// One request per call, no retry, no backoff.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return New(os.Getenv("OPENAI_API_KEY"), defaultBaseURL)
}

func New(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GeneratedDescription is the structured result of a generation call.
type GeneratedDescription struct {
	Content           string   `json:"content"`
	SeoScore          int      `json:"seoScore"`
	WordCount         int      `json:"wordCount"`
	KeywordDensity    float64  `json:"keywordDensity"`
	SuggestedKeywords []string `json:"suggestedKeywords"`
}

// GenerateDescription asks the model for a description and parses its JSON
// answer. Numeric fields are clamped defensively: the model does not always
// respect the requested ranges.
func (c *Client) GenerateDescription(ctx context.Context, request models.GenerationRequest) (*GeneratedDescription, error) {
	prompt := fmt.Sprintf(descriptionPromptTemplate,
		request.ProductName,
		request.Category,
		strings.Join(request.Features, ", "),
		strings.Join(request.Keywords, ", "),
		request.Tone,
		lengthMap[request.Length],
		request.Tone,
		lengthMap[request.Length],
	)

	content, err := c.complete(ctx, descriptionSystemPrompt, prompt, 0.7, 1000)
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to generate product description: %w", err)
	}

	var raw struct {
		Content           string   `json:"content"`
		SeoScore          float64  `json:"seoScore"`
		WordCount         int      `json:"wordCount"`
		KeywordDensity    float64  `json:"keywordDensity"`
		SuggestedKeywords []string `json:"suggestedKeywords"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to generate product description: invalid JSON from model: %w", err)
	}

	keywords := raw.SuggestedKeywords
	if keywords == nil {
		keywords = []string{}
	}

	return &GeneratedDescription{
		Content:           raw.Content,
		SeoScore:          clampScore(raw.SeoScore),
		WordCount:         raw.WordCount,
		KeywordDensity:    clampDensity(raw.KeywordDensity),
		SuggestedKeywords: keywords,
	}, nil
}

// SuggestKeywords asks the model for roughly 10 keywords. No length
// enforcement if the model returns fewer.
func (c *Client) SuggestKeywords(ctx context.Context, productName, category string) ([]string, error) {
	prompt := fmt.Sprintf(keywordsPromptTemplate, productName, category)

	content, err := c.complete(ctx, keywordsSystemPrompt, prompt, 0.5, 300)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest keywords: %w", err)
	}

	var raw struct {
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to suggest keywords: invalid JSON from model: %w", err)
	}

	if raw.Keywords == nil {
		return []string{}, nil
	}
	return raw.Keywords, nil
}

// CalculateSeoScore rates a description from 1 to 10. Unlike the other two
// operations this one swallows every failure and falls back to 5 so a scoring
// hiccup never breaks the caller's page.
func (c *Client) CalculateSeoScore(ctx context.Context, description string, keywords []string) int {
	prompt := fmt.Sprintf(seoScorePromptTemplate, description, strings.Join(keywords, ", "))

	content, err := c.complete(ctx, seoScoreSystemPrompt, prompt, 0.3, 300)
	if err != nil {
		utils.LogError(err, "Error calculating SEO score, using default")
		return 5
	}

	var raw struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		utils.LogError(err, "Invalid SEO score JSON from model, using default")
		return 5
	}

	return clampScore(raw.Score)
}

func (c *Client) complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	requestBody := map[string]interface{}{
		"model": "gpt-4o",
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     temperature,
		"max_tokens":      maxTokens,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("unexpected response from OpenAI: %w", err)
	}

	if response.Error != nil {
		if resp.StatusCode == http.StatusTooManyRequests && response.Error.Code == "insufficient_quota" {
			return "", fmt.Errorf("%w: please add billing information to your OpenAI account at https://platform.openai.com/account/billing", ErrQuotaExceeded)
		}
		return "", fmt.Errorf("OpenAI API error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return response.Choices[0].Message.Content, nil
}

// clampScore rounds and clamps a model-reported score into [1,10].
// A missing score defaults to 5.
func clampScore(score float64) int {
	if score == 0 {
		score = 5
	}
	rounded := int(math.Round(score))
	if rounded < 1 {
		return 1
	}
	if rounded > 10 {
		return 10
	}
	return rounded
}

// clampDensity clamps a model-reported keyword density into [0,100].
func clampDensity(density float64) float64 {
	if density < 0 {
		return 0
	}
	if density > 100 {
		return 100
	}
	return density
}
