package descriptions

import (
	"net/http"

	"seoboost-backend/db"
	"seoboost-backend/models"
	"seoboost-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary List the user's descriptions
// @Description Return all the authenticated user's generated descriptions, newest first
// @Tags descriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Description
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /descriptions [get]
func GetUserDescriptions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var descriptions []models.Description
	err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&descriptions).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error retrieving descriptions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving descriptions"})
		return
	}

	c.JSON(http.StatusOK, descriptions)
}

// @Summary Get a description by ID
// @Description Retrieve one of the user's generated descriptions
// @Tags descriptions
// @Produce json
// @Param id path string true "Description ID"
// @Security BearerAuth
// @Success 200 {object} models.Description
// @Failure 403 {object} map[string]string "error: Access denied"
// @Failure 404 {object} map[string]string "error: Description not found"
// @Router /descriptions/{id} [get]
func GetDescriptionByID(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	descriptionID := c.Param("id")
	if _, err := uuid.Parse(descriptionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid description ID"})
		return
	}

	var description models.Description
	if err := db.DB.First(&description, "id = ?", descriptionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Description not found"})
		return
	}

	if description.UserID != userID.(string) {
		utils.LogErrorWithUser(userID, nil, "Access denied on description "+descriptionID)
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, description)
}
