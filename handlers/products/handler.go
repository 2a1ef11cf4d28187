package products

import (
	"encoding/json"
	"net/http"
	"strconv"

	"seoboost-backend/db"
	"seoboost-backend/models"
	"seoboost-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// @Summary Create a new product
// @Description Create a product owned by the authenticated user
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductInput true "Product information"
// @Security BearerAuth
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products [post]
func CreateProduct(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	status := models.ProductDraft
	if input.Status == string(models.ProductPublished) {
		status = models.ProductPublished
	}

	product := models.Product{
		UserID:              userID.(string),
		Name:                input.Name,
		Category:            input.Category,
		Features:            pq.StringArray(input.Features),
		Keywords:            pq.StringArray(input.Keywords),
		OriginalDescription: input.OriginalDescription,
		Status:              status,
	}

	if err := db.DB.Create(&product).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating product: " + err.Error()})
		return
	}

	eventData, _ := json.Marshal(map[string]interface{}{
		"productName": product.Name,
		"category":    product.Category,
	})
	event := models.AnalyticsEvent{
		UserID:    userID.(string),
		ProductID: &product.ID,
		EventType: models.EventProductCreated,
		EventData: eventData,
	}
	if err := db.DB.Create(&event).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error recording analytics event")
	}

	utils.LogSuccessWithUser(userID, "Product created successfully")
	c.JSON(http.StatusCreated, product)
}

// @Summary List the user's products
// @Description Return the authenticated user's products, newest first, with optional pagination
// @Tags products
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Security BearerAuth
// @Success 200 {array} models.Product
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products [get]
func GetUserProducts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	query := db.DB.Where("user_id = ?", userID).Order("created_at DESC")

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		page := 1
		if pageStr := c.Query("page"); pageStr != "" {
			page, err = strconv.Atoi(pageStr)
			if err != nil || page <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error retrieving products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get a product by ID
// @Description Retrieve one of the user's products
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Security BearerAuth
// @Success 200 {object} models.Product
// @Failure 403 {object} map[string]string "error: Access denied"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Router /products/{id} [get]
func GetProductByID(c *gin.Context) {
	product, ok := loadOwnedProduct(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Update a product
// @Description Update one of the user's products
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.ProductInput true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]string "error: Access denied"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products/{id} [put]
func UpdateProduct(c *gin.Context) {
	product, ok := loadOwnedProduct(c)
	if !ok {
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Features != nil {
		product.Features = pq.StringArray(input.Features)
	}
	if input.Keywords != nil {
		product.Keywords = pq.StringArray(input.Keywords)
	}
	if input.OriginalDescription != "" {
		product.OriginalDescription = input.OriginalDescription
	}
	if input.GeneratedDescription != "" {
		product.GeneratedDescription = input.GeneratedDescription
	}
	if input.Status != "" {
		if input.Status != string(models.ProductDraft) && input.Status != string(models.ProductPublished) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		product.Status = models.ProductStatus(input.Status)
	}

	if err := db.DB.Save(&product).Error; err != nil {
		utils.LogErrorWithUser(product.UserID, err, "Error updating product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Delete a product
// @Description Delete one of the user's products. Its descriptions are kept and detached.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Product deleted successfully"
// @Failure 403 {object} map[string]string "error: Access denied"
// @Failure 404 {object} map[string]string "error: Product not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	product, ok := loadOwnedProduct(c)
	if !ok {
		return
	}

	// Descriptions outlive their product as user-owned history; detach them
	// before the delete so the FK never fires.
	if err := db.DB.Model(&models.Description{}).
		Where("product_id = ?", product.ID).
		Update("product_id", nil).Error; err != nil {
		utils.LogErrorWithUser(product.UserID, err, "Error detaching descriptions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting product"})
		return
	}

	if err := db.DB.Delete(&product).Error; err != nil {
		utils.LogErrorWithUser(product.UserID, err, "Error deleting product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting product"})
		return
	}

	utils.LogSuccessWithUser(product.UserID, "Product deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// loadOwnedProduct fetches the product from the path parameter and enforces
// ownership. Writes the error response itself when it returns false.
func loadOwnedProduct(c *gin.Context) (models.Product, bool) {
	var product models.Product

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return product, false
	}

	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return product, false
	}

	if err := db.DB.First(&product, "id = ?", productID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return product, false
	}

	if product.UserID != userID.(string) {
		utils.LogErrorWithUser(userID, nil, "Access denied on product "+productID)
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return product, false
	}

	return product, true
}
