// Package repository declares the persistence contracts of the CRM service.
// Implementations live in subpackages; sqlstore is the SQL implementation.
package repository

import (
	"time"

	"github.com/ghayaruae/crm-server/internal/query"
)

// BusinessCountFilter selects which of a salesman's businesses are counted.
type BusinessCountFilter struct {
	SalesmanID     int64
	InactiveOnly   bool
	ExcludeDeleted bool
}

// AssignedFilter filters the assigned business report.
type AssignedFilter struct {
	// Status matches is_active exactly when set.
	Status string
	// Keyword matches the business name exactly.
	Keyword string
	Sort    query.Direction
}

// IdleFilter selects a salesman's businesses whose last order is older than Cutoff.
type IdleFilter struct {
	SalesmanID int64
	Cutoff     time.Time
}

// OrderFilter filters orders of a fixed set of businesses.
type OrderFilter struct {
	BusinessIDs  []int64
	BusinessName string
	Keyword      string
	Status       string
	FromDate     string
	ToDate       string
	Sort         query.Direction
}

// SalesmanOrderFilter filters orders across every assigned business.
type SalesmanOrderFilter struct {
	Keyword      string
	SalesmanName string
	// Statuses is a comma separated list of status codes.
	Statuses string
	FromDate string
	ToDate   string
	Sort     query.Direction
}

// SalesFilter selects the orders summed into an achievement figure.
type SalesFilter struct {
	BusinessIDs   []int64
	From          string
	To            string
	DeliveredOnly bool
}

// TargetReportFilter filters the unpaged target report.
type TargetReportFilter struct {
	FromDate   string
	ToDate     string
	SalesmanID *int64
}

// FollowupReportFilter filters the unpaged followup report.
type FollowupReportFilter struct {
	FromDate   string
	ToDate     string
	SalesmanID *int64
}
