package repository

import (
	"context"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

// BusinessRepository reads customer accounts. Single-row lookups return
// sql.ErrNoRows when nothing matches.
type BusinessRepository interface {
	// List pages the businesses assigned to salesmanID.
	List(ctx context.Context, salesmanID int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Business], error)

	// Info returns a business with its level when it is assigned to salesmanID.
	Info(ctx context.Context, businessID, salesmanID int64) (*model.BusinessInfo, error)

	// Owned reports whether businessID is assigned to salesmanID.
	Owned(ctx context.Context, businessID, salesmanID int64) (bool, error)

	// IDs returns the identifiers of the businesses assigned to salesmanID.
	IDs(ctx context.Context, salesmanID int64, excludeDeleted bool) ([]int64, error)

	// Count counts a salesman's businesses.
	Count(ctx context.Context, f BusinessCountFilter) (int64, error)

	// Metric computes one dashboard figure of a business.
	Metric(ctx context.Context, businessID int64, m model.BusinessMetric) (float64, error)

	// Idle pages businesses without an order since the filter cutoff, most idle first.
	Idle(ctx context.Context, f IdleFilter, p pagination.Params) (*pagination.Page[model.IdleBusiness], error)

	// Assigned pages businesses that have a salesman, joined with the salesman.
	Assigned(ctx context.Context, f AssignedFilter, p pagination.Params) (*pagination.Page[model.AssignedBusiness], error)

	// Inactive lists inactive businesses that have a salesman.
	Inactive(ctx context.Context) ([]model.InactiveBusiness, error)

	// AssignedSummary returns the ids of every business with a salesman and
	// how many of them are inactive.
	AssignedSummary(ctx context.Context) (ids []int64, inactive int64, err error)
}
