package model

import "time"

// Business is a customer account assigned to a salesman.
type Business struct {
	BusinessID          int64      `json:"business_id"`
	BusinessName        string     `json:"business_name"`
	ContactNumber       *string    `json:"business_contact_number"`
	Email               *string    `json:"business_email"`
	Mobile              *string    `json:"business_mobile"`
	SalesmanID          *int64     `json:"business_salesman_id"`
	LevelID             *int64     `json:"business_level_id"`
	CreditLimit         float64    `json:"business_credit_limit"`
	CreditBalance       float64    `json:"business_credit_balance"`
	RewardPointsBalance float64    `json:"business_reward_points_balance"`
	IsActive            int        `json:"is_active"`
	RegisteredDate      *time.Time `json:"business_registered_date"`
}

// BusinessInfo is a business joined with its level.
type BusinessInfo struct {
	Business
	LevelName *string `json:"business_level_name"`
}

// AssignedBusiness is a business joined with its salesman.
type AssignedBusiness struct {
	Business
	SalesmanName *string `json:"business_salesmen_name"`
}

// InactiveBusiness is a row of the inactive business list.
type InactiveBusiness struct {
	BusinessID   int64   `json:"business_id"`
	BusinessName string  `json:"business_name"`
	Mobile       *string `json:"business_mobile"`
	IsActive     int     `json:"is_active"`
}

// IdleBusiness is a business without a recent order.
type IdleBusiness struct {
	BusinessID       int64      `json:"business_id"`
	BusinessName     string     `json:"business_name"`
	ContactNumber    *string    `json:"business_contact_number"`
	Email            *string    `json:"business_email"`
	RegisteredDate   *time.Time `json:"-"`
	LastOrderDate    *time.Time `json:"last_order_date"`
	TotalOrders      int64      `json:"total_orders"`
	NoOrderSinceDays int        `json:"no_order_since_days"`
}

// BusinessMetric names one figure of the business dashboard.
type BusinessMetric string

const (
	MetricTotalOrders     BusinessMetric = "total_orders"
	MetricDeliveredOrders BusinessMetric = "total_delivered_orders"
	MetricPendingOrders   BusinessMetric = "total_pending_orders"
	MetricCancelledOrders BusinessMetric = "total_cancelled_orders"
	MetricCreditLimit     BusinessMetric = "total_credit_limit"
	MetricUsedCredit      BusinessMetric = "total_used_credit_amount"
	MetricRemainingCredit BusinessMetric = "total_remaining_credit"
	MetricRewardPoints    BusinessMetric = "total_reward_points"
)

// BusinessMetrics lists every dashboard figure in response order.
var BusinessMetrics = []BusinessMetric{
	MetricTotalOrders,
	MetricDeliveredOrders,
	MetricPendingOrders,
	MetricCancelledOrders,
	MetricCreditLimit,
	MetricUsedCredit,
	MetricRemainingCredit,
	MetricRewardPoints,
}

// BusinessDashboard holds the per-business aggregate figures.
type BusinessDashboard struct {
	TotalOrders          int64   `json:"total_orders"`
	TotalDelivered       int64   `json:"total_delivered_orders"`
	TotalPending         int64   `json:"total_pending_orders"`
	TotalCancelled       int64   `json:"total_cancelled_orders"`
	TotalCreditLimit     float64 `json:"total_credit_limit"`
	TotalUsedCredit      float64 `json:"total_used_credit_amount"`
	TotalRemainingCredit float64 `json:"total_remaining_credit"`
	TotalRewardPoints    float64 `json:"total_reward_points"`
}

// Set stores v under metric m.
func (d *BusinessDashboard) Set(m BusinessMetric, v float64) {
	switch m {
	case MetricTotalOrders:
		d.TotalOrders = int64(v)
	case MetricDeliveredOrders:
		d.TotalDelivered = int64(v)
	case MetricPendingOrders:
		d.TotalPending = int64(v)
	case MetricCancelledOrders:
		d.TotalCancelled = int64(v)
	case MetricCreditLimit:
		d.TotalCreditLimit = v
	case MetricUsedCredit:
		d.TotalUsedCredit = v
	case MetricRemainingCredit:
		d.TotalRemainingCredit = v
	case MetricRewardPoints:
		d.TotalRewardPoints = v
	}
}
