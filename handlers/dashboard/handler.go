package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"seoboost-backend/db"
	"seoboost-backend/models"
	"seoboost-backend/utils"

	"github.com/gin-gonic/gin"
)

// DashboardStats aggregates the numbers shown on the dashboard, all scoped
// to the authenticated user.
type DashboardStats struct {
	TotalProducts      int64   `json:"totalProducts"`
	GeneratedThisMonth int64   `json:"generatedThisMonth"`
	AvgSeoScore        float64 `json:"avgSeoScore"`
	ApiCredits         int     `json:"apiCredits"`
}

// @Summary Dashboard statistics
// @Description Product count, descriptions generated in the trailing month, average SEO score and remaining credits
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardStats
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /dashboard/stats [get]
func GetStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var stats DashboardStats

	if err := db.DB.Model(&models.Product{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalProducts).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error counting products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard stats"})
		return
	}

	oneMonthAgo := time.Now().AddDate(0, -1, 0)
	if err := db.DB.Model(&models.Description{}).
		Where("user_id = ? AND created_at >= ?", userID, oneMonthAgo).
		Count(&stats.GeneratedThisMonth).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error counting descriptions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard stats"})
		return
	}

	// COALESCE keeps the average at 0 when the user has no descriptions yet
	if err := db.DB.Model(&models.Description{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(seo_score), 0)").
		Scan(&stats.AvgSeoScore).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error averaging SEO scores")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard stats"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in GetStats")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.ApiCredits != nil {
		stats.ApiCredits = *user.ApiCredits
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Recent products
// @Description Return the user's most recently created products
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of products to return (default 5)"
// @Security BearerAuth
// @Success 200 {array} models.Product
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /dashboard/recent-products [get]
func GetRecentProducts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var products []models.Product
	err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error retrieving recent products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving recent products"})
		return
	}

	c.JSON(http.StatusOK, products)
}
