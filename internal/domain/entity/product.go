package entity

import (
	"time"
)

const (
	ProductStatusActive      = "active"
	ProductStatusSold        = "sold"
	ProductStatusUnavailable = "unavailable"
	ProductStatusDraft       = "draft"
)

func IsValidProductStatus(status string) bool {
	switch status {
	case ProductStatusActive, ProductStatusSold, ProductStatusUnavailable, ProductStatusDraft:
		return true
	}
	return false
}

type Product struct {
	ID            string    `json:"id" firestore:"id"`
	SellerID      string    `json:"seller_id" firestore:"createdBy"`
	Title         string    `json:"title" firestore:"title"`
	Description   string    `json:"description" firestore:"description"`
	Price         float64   `json:"price" firestore:"price"`
	Category      string    `json:"category" firestore:"category"`
	Status        string    `json:"status" firestore:"status"`
	ImageURLs     []string  `json:"image_urls" firestore:"imageUrls"`
	ViewCount     int       `json:"view_count" firestore:"viewCount"`
	InquiryCount  int       `json:"inquiry_count" firestore:"inquiryCount"`
	FavoriteCount int       `json:"favorite_count" firestore:"favoriteCount"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
