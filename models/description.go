package models

import (
	"time"
)

// Description is one generation result. Rows are immutable after insert
// except for the IsActive flag. ProductID is nullable: a description can be
// generated before it is attached to a product.
type Description struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID      *string   `json:"productId" gorm:"type:uuid;index"`
	UserID         string    `json:"userId" gorm:"type:uuid;not null;index"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	SeoScore       float64   `json:"seoScore" gorm:"type:decimal(3,1)"`
	WordCount      int       `json:"wordCount"`
	KeywordDensity float64   `json:"keywordDensity" gorm:"type:decimal(5,2)"`
	Tone           string    `json:"tone" gorm:"type:varchar(20)"`
	Length         string    `json:"length" gorm:"type:varchar(20)"`
	IsActive       bool      `json:"isActive" gorm:"default:true"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GenerationRequest is the payload accepted by POST /generate/description.
type GenerationRequest struct {
	ProductName string   `json:"productName" binding:"required"`
	Features    []string `json:"features"`
	Category    string   `json:"category" binding:"required"`
	Keywords    []string `json:"keywords"`
	Tone        string   `json:"tone" binding:"required,oneof=professional casual enthusiastic"`
	Length      string   `json:"length" binding:"required,oneof=short medium long"`
	ProductID   *string  `json:"productId"`
}
