package models

import (
	"time"
)

type SubscriptionStatus string

// Possible values for a user's subscription status
const (
	SubscriptionFree     SubscriptionStatus = "free"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// DefaultApiCredits is the generation allowance granted to new accounts.
const DefaultApiCredits = 100

// User represents an account in the database. ApiCredits is nullable:
// NULL means the user has no cap on generation calls.
type User struct {
	ID                   string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email                string             `json:"email" gorm:"uniqueIndex;not null"`
	Password             string             `json:"-"`
	FirstName            string             `json:"firstName"`
	LastName             string             `json:"lastName"`
	ProfileImageUrl      string             `json:"profileImageUrl"`
	SubscriptionStatus   SubscriptionStatus `json:"subscriptionStatus" gorm:"type:varchar(20);default:'free'"`
	ApiCredits           *int               `json:"apiCredits"`
	StripeCustomerId     string             `json:"stripeCustomerId"`
	StripeSubscriptionId string             `json:"stripeSubscriptionId"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// RegisterInput is the payload accepted by POST /register
type RegisterInput struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginInput is the payload accepted by POST /login
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
