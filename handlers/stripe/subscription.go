package stripe

import (
	"net/http"
	"os"
	"strings"

	"seoboost-backend/db"
	"seoboost-backend/models"
	"seoboost-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// MonthlyPriceCents is the fixed monthly subscription price ($29.00).
const MonthlyPriceCents = 2900

// CreateSubscription starts a payment for the monthly plan. An existing
// payment intent on file is reused; otherwise the Stripe customer is reused
// or created and a fresh intent is issued.
// @Summary Create a subscription payment intent
// @Description Start a Stripe payment for the fixed monthly plan. Returns the client secret to confirm on the frontend.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "subscriptionId: payment intent ID, clientSecret: Stripe client secret"
// @Failure 400 {object} map[string]string "error: No user email on file"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 500 {object} map[string]string "error: Stripe error or server error"
// @Router /subscriptions [post]
func CreateSubscription(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	userID, exists := c.Get("user_id")
	if !exists {
		utils.LogError(nil, "User not authenticated in CreateSubscription")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in CreateSubscription")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.StripeSubscriptionId != "" {
		pi, err := paymentintent.Get(user.StripeSubscriptionId, nil)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"subscriptionId": pi.ID,
				"clientSecret":   pi.ClientSecret,
			})
			return
		}
		// Stale intent on file, fall through and create a fresh one
		utils.LogErrorWithUser(userID, err, "Stored payment intent no longer retrievable in CreateSubscription")
	}

	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No user email on file"})
		return
	}

	if user.StripeCustomerId != "" {
		// Make sure the customer still exists on Stripe
		if _, err := customer.Get(user.StripeCustomerId, nil); err != nil {
			user.StripeCustomerId = ""
		}
	}
	if user.StripeCustomerId == "" {
		custParams := &stripe.CustomerParams{
			Email: stripe.String(user.Email),
			Name:  stripe.String(strings.TrimSpace(user.FirstName + " " + user.LastName)),
		}
		cust, err := customer.New(custParams)
		if err != nil {
			utils.LogErrorWithUser(userID, err, "Error creating the Stripe customer in CreateSubscription")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the Stripe customer"})
			return
		}
		user.StripeCustomerId = cust.ID
	}

	params := &stripe.PaymentIntentParams{
		Amount:           stripe.Int64(MonthlyPriceCents),
		Currency:         stripe.String(string(stripe.CurrencyUSD)),
		Customer:         stripe.String(user.StripeCustomerId),
		SetupFutureUsage: stripe.String(string(stripe.PaymentIntentSetupFutureUsageOffSession)),
	}
	params.AddMetadata("type", "subscription")
	params.AddMetadata("userId", user.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the payment intent in CreateSubscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	err = db.DB.Model(&user).Updates(map[string]interface{}{
		"stripe_customer_id":     user.StripeCustomerId,
		"stripe_subscription_id": pi.ID,
		"subscription_status":    models.SubscriptionActive,
	}).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error saving Stripe info in CreateSubscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving Stripe info"})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription payment intent created successfully")
	c.JSON(http.StatusOK, gin.H{
		"subscriptionId": pi.ID,
		"clientSecret":   pi.ClientSecret,
	})
}
