package repository

import (
	"context"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
)

// SalesmanRepository reads sales representatives.
type SalesmanRepository interface {
	Exists(ctx context.Context, salesmanID int64) (bool, error)
	FindByID(ctx context.Context, salesmanID int64) (*model.Salesman, error)
	// FindByLoginID includes the stored password for verification.
	FindByLoginID(ctx context.Context, loginID string) (*model.Salesman, error)
	Options(ctx context.Context) ([]model.SalesmanOption, error)
	All(ctx context.Context) ([]model.Salesman, error)
	List(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.Salesman], error)
	Count(ctx context.Context) (int64, error)
}
