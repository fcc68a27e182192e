package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// CanTransitionOrder encodes the order state machine: pending may move to
// in_progress or cancelled, in_progress only to delivered. Delivered and
// cancelled are terminal.
func CanTransitionOrder(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusInProgress || to == OrderStatusCancelled
	case OrderStatusInProgress:
		return to == OrderStatusDelivered
	}
	return false
}

type DeliveryDetails struct {
	Name    string `json:"name" firestore:"name"`
	Phone   string `json:"phone" firestore:"phone"`
	Address string `json:"address" firestore:"address"`
	Notes   string `json:"notes,omitempty" firestore:"notes,omitempty"`
}

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Title     string  `json:"title" firestore:"title"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

// DeliveryInfo is a snapshot of the chosen company at checkout time, so the
// order stays readable even if the company record changes later.
type DeliveryInfo struct {
	CompanyID             string  `json:"company_id" firestore:"companyId"`
	CompanyName           string  `json:"company_name" firestore:"companyName"`
	DeliveryType          string  `json:"delivery_type" firestore:"deliveryType"`
	DeliveryRate          float64 `json:"delivery_rate" firestore:"deliveryRate"`
	EstimatedDeliveryTime string  `json:"estimated_delivery_time" firestore:"estimatedDeliveryTime"`
	SelectedOption        string  `json:"selected_option,omitempty" firestore:"selectedOption,omitempty"`
}

type Order struct {
	ID              string          `json:"id" firestore:"id"`
	UserID          string          `json:"user_id" firestore:"userId"`
	DeliveryDetails DeliveryDetails `json:"delivery_details" firestore:"deliveryDetails"`
	Items           []OrderItem     `json:"items" firestore:"items"`
	DeliveryInfo    DeliveryInfo    `json:"delivery_info" firestore:"deliveryInfo"`
	Subtotal        float64         `json:"subtotal" firestore:"subtotal"`
	DeliveryFee     float64         `json:"delivery_fee" firestore:"deliveryFee"`
	Total           float64         `json:"total" firestore:"total"`
	Status          string          `json:"status" firestore:"status"`
	CreatedAt       time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time       `json:"updated_at" firestore:"updatedAt"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty" firestore:"cancelledAt,omitempty"`
}
