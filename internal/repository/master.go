package repository

import (
	"context"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

// TargetRepository persists salesman sales targets. Save inserts when
// TargetID is zero and updates otherwise; an update of a missing row returns
// sql.ErrNoRows.
type TargetRepository interface {
	Save(ctx context.Context, t *model.Target) (int64, error)
	List(ctx context.Context, salesmanID *int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Target], error)
	Get(ctx context.Context, targetID int64) (*model.Target, error)
	Delete(ctx context.Context, targetID int64) (int64, error)
	// Latest returns the most recently created target of a salesman.
	Latest(ctx context.Context, salesmanID int64) (*model.Target, error)
	// BySalesman lists a salesman's targets by period start.
	BySalesman(ctx context.Context, salesmanID int64) ([]model.Target, error)
	Report(ctx context.Context, f TargetReportFilter) ([]model.TargetReportRow, error)
	Sum(ctx context.Context) (float64, error)
}

// FollowupRepository persists salesman followups.
type FollowupRepository interface {
	Save(ctx context.Context, f *model.Followup) (int64, error)
	List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.FollowupListItem], error)
	Get(ctx context.Context, followupID int64) (*model.Followup, error)
	Delete(ctx context.Context, followupID int64) (int64, error)
	Report(ctx context.Context, f FollowupReportFilter) ([]model.FollowupReportRow, error)
	TypeChart(ctx context.Context) (*model.FollowTypeChart, error)
}

// PartRequestRepository persists part inquiries.
type PartRequestRepository interface {
	Save(ctx context.Context, r *model.PartRequest) (int64, error)
	List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.PartRequest], error)
	Get(ctx context.Context, requestID int64) (*model.PartRequest, error)
	Delete(ctx context.Context, requestID int64) (int64, error)
	Latest(ctx context.Context, n int) ([]model.PartInquiry, error)
}

// PrivilegeRepository persists the privilege catalog and salesman grants.
type PrivilegeRepository interface {
	Catalog(ctx context.Context) ([]model.Privilege, error)
	List(ctx context.Context, sort query.Direction, p pagination.Params) (*pagination.Page[model.Privilege], error)
	Save(ctx context.Context, pr *model.Privilege) (int64, error)
	// ReplacePermissions swaps a salesman's grants in one transaction.
	ReplacePermissions(ctx context.Context, salesmanID int64, privilegeIDs []int64) error
}

// InventoryRepository reads catalogue cross references and brands.
type InventoryRepository interface {
	CrossParts(ctx context.Context, partNumber, supID string, sort query.Direction, p pagination.Params) (*pagination.Page[model.CrossPart], error)
	Suppliers(ctx context.Context) ([]model.Supplier, error)
}

// DocumentRepository persists business document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.BusinessDocument) (*model.BusinessDocument, error)
	FindByID(ctx context.Context, documentID string) (*model.BusinessDocument, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]model.BusinessDocument, error)
	// Delete removes a row. Deleting a missing row is not an error.
	Delete(ctx context.Context, documentID string) error
}
