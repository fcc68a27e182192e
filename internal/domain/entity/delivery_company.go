package entity

import (
	"time"
)

const (
	CompanyStatusPending    = "pending"
	CompanyStatusActive     = "active"
	CompanyStatusSuspended  = "suspended"
	CompanyStatusTerminated = "terminated"
)

const (
	DeliveryTypeStandard = "standard"
	DeliveryTypeExpress  = "express"
	DeliveryTypeSameDay  = "sameDay"
)

func IsValidCompanyStatus(status string) bool {
	switch status {
	case CompanyStatusPending, CompanyStatusActive, CompanyStatusSuspended, CompanyStatusTerminated:
		return true
	}
	return false
}

type ContactInfo struct {
	Email   string `json:"email" firestore:"email"`
	Phone   string `json:"phone" firestore:"phone"`
	Address string `json:"address,omitempty" firestore:"address,omitempty"`
}

type DeliveryCompany struct {
	ID            string      `json:"id" firestore:"id"`
	Name          string      `json:"name" firestore:"name"`
	Status        string      `json:"status" firestore:"status"`
	ContactInfo   ContactInfo `json:"contact_info" firestore:"contactInfo"`
	DeliveryTypes []string    `json:"delivery_types" firestore:"deliveryTypes"`
	CreatedAt     time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time   `json:"updated_at" firestore:"updatedAt"`
}

// ServiceArea restricts which addresses a company can serve. Matching is a
// plain case-insensitive containment test over the area name.
type ServiceArea struct {
	ID        string    `json:"id" firestore:"id"`
	CompanyID string    `json:"company_id" firestore:"companyId"`
	Area      string    `json:"area" firestore:"area"`
	Priority  int       `json:"priority" firestore:"priority"`
	IsActive  bool      `json:"is_active" firestore:"isActive"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type BaseRates struct {
	Standard float64 `json:"standard" firestore:"standard"`
	Express  float64 `json:"express" firestore:"express"`
	SameDay  float64 `json:"same_day" firestore:"sameDay"`
}

type EstimatedTimes struct {
	Standard string `json:"standard" firestore:"standard"`
	Express  string `json:"express" firestore:"express"`
	SameDay  string `json:"same_day" firestore:"sameDay"`
}

// PricingStructure is keyed by company ID, one doc per company.
type PricingStructure struct {
	CompanyID      string         `json:"company_id" firestore:"companyId"`
	BaseRates      BaseRates      `json:"base_rates" firestore:"baseRates"`
	EstimatedTimes EstimatedTimes `json:"estimated_times" firestore:"estimatedTimes"`
	UpdatedAt      time.Time      `json:"updated_at" firestore:"updatedAt"`
}

func (p *PricingStructure) RateFor(deliveryType string) float64 {
	switch deliveryType {
	case DeliveryTypeExpress:
		return p.BaseRates.Express
	case DeliveryTypeSameDay:
		return p.BaseRates.SameDay
	default:
		return p.BaseRates.Standard
	}
}

func (p *PricingStructure) EstimateFor(deliveryType string) string {
	switch deliveryType {
	case DeliveryTypeExpress:
		return p.EstimatedTimes.Express
	case DeliveryTypeSameDay:
		return p.EstimatedTimes.SameDay
	default:
		return p.EstimatedTimes.Standard
	}
}

type PerformanceMetrics struct {
	CompanyID       string    `json:"company_id" firestore:"companyId"`
	DeliveredOrders int       `json:"delivered_orders" firestore:"deliveredOrders"`
	CancelledOrders int       `json:"cancelled_orders" firestore:"cancelledOrders"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}

// DeliveryOption is a buyer-facing quote assembled from an active company
// and its pricing.
type DeliveryOption struct {
	CompanyID     string  `json:"company_id"`
	CompanyName   string  `json:"company_name"`
	DeliveryType  string  `json:"delivery_type"`
	Rate          float64 `json:"rate"`
	EstimatedTime string  `json:"estimated_time"`
}
