package entity

import (
	"time"
)

const (
	InquiryStatusOpen      = "open"
	InquiryStatusReplied   = "replied"
	InquiryStatusCompleted = "completed"
	InquiryStatusClosed    = "closed"
)

const (
	SenderTypeBuyer  = "buyer"
	SenderTypeSeller = "seller"
	SenderTypeSystem = "system"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// CanTransitionInquiry encodes the inquiry state machine. Closed is
// terminal; completed may only be reopened back to open.
func CanTransitionInquiry(from, to string) bool {
	switch from {
	case InquiryStatusOpen:
		return to == InquiryStatusReplied || to == InquiryStatusCompleted || to == InquiryStatusClosed
	case InquiryStatusReplied:
		return to == InquiryStatusOpen || to == InquiryStatusCompleted || to == InquiryStatusClosed
	case InquiryStatusCompleted:
		return to == InquiryStatusOpen
	}
	return false
}

func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Message struct {
	ID              string    `json:"id" firestore:"id"`
	SenderID        string    `json:"sender_id" firestore:"senderId"`
	SenderType      string    `json:"sender_type" firestore:"senderType"`
	Content         string    `json:"content" firestore:"content"`
	Timestamp       time.Time `json:"timestamp" firestore:"timestamp"`
	IsRead          bool      `json:"is_read" firestore:"isRead"`
	IsSystemMessage bool      `json:"is_system_message" firestore:"isSystemMessage"`
	IsAutoResponse  bool      `json:"is_auto_response" firestore:"isAutoResponse"`
}

type Inquiry struct {
	ID            string    `json:"id" firestore:"id"`
	ProductID     string    `json:"product_id" firestore:"productId"`
	BuyerID       string    `json:"buyer_id" firestore:"buyerId"`
	SellerID      string    `json:"seller_id" firestore:"sellerId"`
	Subject       string    `json:"subject" firestore:"subject"`
	Status        string    `json:"status" firestore:"status"`
	Priority      string    `json:"priority" firestore:"priority"`
	Messages      []Message `json:"messages" firestore:"messages"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
