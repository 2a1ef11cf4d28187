package stripe

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"seoboost-backend/db"
	"seoboost-backend/models"
	"seoboost-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

// monthlyCreditAllotment is added to a finite credit counter on each
// successful subscription payment. Unlimited (NULL) counters are left alone.
const monthlyCreditAllotment = 100

func WebhookHandler(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to read the request body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "customer.subscription.updated":
		handleSubscriptionUpdated(c, event)
	case "customer.subscription.deleted":
		handleSubscriptionDeleted(c, event)
	case "invoice.payment_succeeded":
		handleInvoicePaymentSucceeded(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

// findUserByCustomer resolves the local user from a Stripe customer ID.
func findUserByCustomer(customerID string) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, "stripe_customer_id = ?", customerID).Error
	return user, err
}

func handleSubscriptionUpdated(c *gin.Context, event stripe.Event) {
	var subscription stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing Subscription"})
		return
	}

	if subscription.Customer == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subscription without customer"})
		return
	}

	user, err := findUserByCustomer(subscription.Customer.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found for this customer"})
		return
	}

	status := models.SubscriptionCanceled
	if subscription.Status == stripe.SubscriptionStatusActive || subscription.Status == stripe.SubscriptionStatusTrialing {
		status = models.SubscriptionActive
	}

	if err := db.DB.Model(&user).Update("subscription_status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the subscription status"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Subscription status updated via webhook")
	c.JSON(http.StatusOK, gin.H{"message": "Subscription status updated"})
}

func handleSubscriptionDeleted(c *gin.Context, event stripe.Event) {
	var subscription stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing Subscription"})
		return
	}

	if subscription.Customer == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subscription without customer"})
		return
	}

	user, err := findUserByCustomer(subscription.Customer.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found for this customer"})
		return
	}

	err = db.DB.Model(&user).Updates(map[string]interface{}{
		"subscription_status":    models.SubscriptionFree,
		"stripe_subscription_id": "",
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the subscription status"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Subscription deleted via webhook")
	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted"})
}

func handleInvoicePaymentSucceeded(c *gin.Context, event stripe.Event) {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing Invoice"})
		return
	}

	if invoice.Customer == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice without customer"})
		return
	}

	user, err := findUserByCustomer(invoice.Customer.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found for this customer"})
		return
	}

	if err := db.DB.Model(&user).Update("subscription_status", models.SubscriptionActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the subscription status"})
		return
	}

	err = db.DB.Model(&models.User{}).
		Where("id = ? AND api_credits IS NOT NULL", user.ID).
		Update("api_credits", gorm.Expr("api_credits + ?", monthlyCreditAllotment)).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding API credits"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Payment recorded, subscription active and credits added")
	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}
