package analytics

import (
	"net/http"

	"seoboost-backend/db"
	"seoboost-backend/models"
	"seoboost-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List the user's analytics events
// @Description Return the authenticated user's analytics events, newest first
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AnalyticsEvent
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /analytics [get]
func GetUserAnalytics(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var events []models.AnalyticsEvent
	err := db.DB.Where("user_id = ?", userID).Order("timestamp DESC").Find(&events).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error retrieving analytics events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving analytics"})
		return
	}

	c.JSON(http.StatusOK, events)
}
