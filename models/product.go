package models

import (
	"time"

	"github.com/lib/pq"
)

type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductPublished ProductStatus = "published"
)

type Product struct {
	ID                   string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID               string         `json:"userId" gorm:"type:uuid;not null;index"`
	Name                 string         `json:"name" gorm:"not null"`
	Category             string         `json:"category"`
	Features             pq.StringArray `json:"features" gorm:"type:text[]"`
	Keywords             pq.StringArray `json:"keywords" gorm:"type:text[]"`
	OriginalDescription  string         `json:"originalDescription" gorm:"type:text"`
	GeneratedDescription string         `json:"generatedDescription" gorm:"type:text"`
	SeoScore             float64        `json:"seoScore" gorm:"type:decimal(3,1)"`
	Status               ProductStatus  `json:"status" gorm:"type:varchar(20);default:'draft'"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// ProductInput is the payload accepted by the product create/update endpoints.
// On update, zero-valued fields are left untouched.
type ProductInput struct {
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Features             []string `json:"features"`
	Keywords             []string `json:"keywords"`
	OriginalDescription  string   `json:"originalDescription"`
	GeneratedDescription string   `json:"generatedDescription"`
	Status               string   `json:"status"`
}
