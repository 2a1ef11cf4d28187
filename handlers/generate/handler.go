package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"seoboost-backend/db"
	"seoboost-backend/models"
	"seoboost-backend/services/openai"
	"seoboost-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// aiClient is swapped in tests
var aiClient = openai.NewClient()

const demoModeMessage = "Demo content generated. Please add billing to your OpenAI account at https://platform.openai.com/account/billing for full AI generation."

// GenerateDescription runs the request/credit workflow: gate on the user's
// credit counter, call the model, persist the result, burn one credit and
// record an analytics event.
// @Summary Generate a product description
// @Description Generate an SEO-optimized product description. Costs one API credit. Falls back to demo content when the OpenAI quota is exhausted.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.GenerationRequest true "Generation parameters"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "description, generatedDescription, remainingCredits"
// @Failure 400 {object} map[string]string "error: Invalid input or insufficient API credits"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Failed to generate description"
// @Router /generate/description [post]
func GenerateDescription(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request models.GenerationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in GenerateDescription")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// A NULL counter means unlimited and never blocks the request
	if user.ApiCredits != nil && *user.ApiCredits <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient API credits"})
		return
	}

	generated, err := aiClient.GenerateDescription(c.Request.Context(), request)
	if err != nil {
		if errors.Is(err, openai.ErrQuotaExceeded) {
			utils.LogErrorWithUser(userID, err, "OpenAI quota exhausted, serving demo content")
			respondWithGeneration(c, user, request, demoDescription(request), true)
			return
		}
		utils.LogErrorWithUser(userID, err, "Error generating description")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondWithGeneration(c, user, request, generated, false)
}

// respondWithGeneration is the shared tail of the workflow, identical for
// real and demo generations: persist, decrement, track, answer.
func respondWithGeneration(c *gin.Context, user models.User, request models.GenerationRequest, generated *openai.GeneratedDescription, demoMode bool) {
	description := models.Description{
		ProductID:      request.ProductID,
		UserID:         user.ID,
		Content:        generated.Content,
		SeoScore:       float64(generated.SeoScore),
		WordCount:      generated.WordCount,
		KeywordDensity: generated.KeywordDensity,
		Tone:           request.Tone,
		Length:         request.Length,
		IsActive:       true,
	}

	if err := db.DB.Create(&description).Error; err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error saving generated description")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving generated description"})
		return
	}

	deductCredit(user.ID)

	eventData, _ := json.Marshal(map[string]interface{}{
		"seoScore":  generated.SeoScore,
		"wordCount": generated.WordCount,
		"tone":      request.Tone,
		"length":    request.Length,
	})
	event := models.AnalyticsEvent{
		UserID:        user.ID,
		ProductID:     request.ProductID,
		DescriptionID: &description.ID,
		EventType:     models.EventDescriptionGenerated,
		EventData:     eventData,
	}
	if err := db.DB.Create(&event).Error; err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error recording analytics event")
	}

	response := gin.H{
		"description":          description,
		"generatedDescription": generated,
		"remainingCredits":     remainingCredits(user.ApiCredits),
	}
	if demoMode {
		response["demoMode"] = true
		response["message"] = demoModeMessage
	}

	utils.LogSuccessWithUser(user.ID, "Description generated successfully")
	c.JSON(http.StatusOK, response)
}

// deductCredit burns one credit in a single conditional UPDATE so two
// concurrent generations can never drive the counter negative. NULL counters
// are unlimited and stay NULL.
func deductCredit(userID string) {
	err := db.DB.Model(&models.User{}).
		Where("id = ? AND api_credits IS NOT NULL", userID).
		Update("api_credits", gorm.Expr("GREATEST(api_credits - 1, 0)")).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error deducting API credit")
	}
}

func remainingCredits(credits *int) int {
	if credits == nil {
		return 0
	}
	remaining := *credits - 1
	if remaining < 0 {
		return 0
	}
	return remaining
}

// demoDescription builds a deterministic stand-in from the request's own
// fields, used when the provider cannot serve a real generation call.
func demoDescription(request models.GenerationRequest) *openai.GeneratedDescription {
	return &openai.GeneratedDescription{
		Content: fmt.Sprintf(
			"Transform your product experience with this premium %s. Crafted with exceptional attention to detail, this %s combines innovative design with superior functionality. Key features include %s, making it the perfect choice for discerning customers. Available now with fast shipping and our satisfaction guarantee. Order today and discover why thousands of customers trust our quality and service.",
			request.ProductName,
			strings.ToLower(request.Category),
			strings.Join(request.Features, ", "),
		),
		SeoScore:          8,
		WordCount:         65,
		KeywordDensity:    12.5,
		SuggestedKeywords: []string{"premium", "quality", "innovative", "satisfaction guarantee", "fast shipping"},
	}
}

// SuggestKeywords returns ~10 SEO keywords for a product name and category.
// @Summary Suggest SEO keywords
// @Description Suggest relevant SEO keywords for a product
// @Tags generate
// @Accept json
// @Produce json
// @Param request body object true "productName and category"
// @Security BearerAuth
// @Success 200 {object} map[string][]string "keywords"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Failed to suggest keywords"
// @Router /generate/keywords [post]
func SuggestKeywords(c *gin.Context) {
	var request struct {
		ProductName string `json:"productName" binding:"required"`
		Category    string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	keywords, err := aiClient.SuggestKeywords(c.Request.Context(), request.ProductName, request.Category)
	if err != nil {
		utils.LogError(err, "Error suggesting keywords")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to suggest keywords"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}

// CalculateSeoScore re-scores an existing description against keywords.
// @Summary Calculate an SEO score
// @Description Score a description from 1 to 10 against target keywords
// @Tags generate
// @Accept json
// @Produce json
// @Param request body object true "description and keywords"
// @Security BearerAuth
// @Success 200 {object} map[string]int "seoScore"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Router /generate/seo-score [post]
func CalculateSeoScore(c *gin.Context) {
	var request struct {
		Description string   `json:"description" binding:"required"`
		Keywords    []string `json:"keywords"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	seoScore := aiClient.CalculateSeoScore(c.Request.Context(), request.Description, request.Keywords)
	c.JSON(http.StatusOK, gin.H{"seoScore": seoScore})
}
