package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

// ReportService serves the report screens.
type ReportService interface {
	// BusinessOrders pages the caller's orders with their items. Returned
	// items are taken off each order's corrected total.
	BusinessOrders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.OrderReport], error)
	BusinessAllOrders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error)
	Targets(ctx context.Context, f repository.TargetReportFilter) ([]model.TargetReportRow, error)
	Followups(ctx context.Context, f repository.FollowupReportFilter) ([]model.FollowupReportRow, error)
	Salesmen(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.Salesman], error)
	SalesmanOrders(ctx context.Context, f repository.SalesmanOrderFilter, p pagination.Params) (*pagination.Page[model.SalesmanOrder], error)
	AssignedBusinesses(ctx context.Context, f repository.AssignedFilter, p pagination.Params) (*pagination.Page[model.AssignedBusiness], error)
	CrossParts(ctx context.Context, partNumber, supID string, sort query.Direction, p pagination.Params) (*pagination.Page[model.CrossPart], error)
	Suppliers(ctx context.Context) ([]model.Supplier, error)
	InactiveBusinesses(ctx context.Context) ([]model.InactiveBusiness, error)
}

// ReportRepos groups the repositories ReportService reads.
type ReportRepos struct {
	Businesses repository.BusinessRepository
	Orders     repository.OrderRepository
	Salesmen   repository.SalesmanRepository
	Targets    repository.TargetRepository
	Followups  repository.FollowupRepository
	Inventory  repository.InventoryRepository
}

type reportService struct {
	repos          ReportRepos
	currencyPrefix string
	log            zerolog.Logger
}

// NewReportService constructs a ReportService. currencyPrefix is printed in
// front of display amounts.
func NewReportService(repos ReportRepos, currencyPrefix string, log zerolog.Logger) ReportService {
	return &reportService{repos: repos, currencyPrefix: currencyPrefix, log: log}
}

func (s *reportService) BusinessOrders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.OrderReport], error) {
	if err := checkDates(f.FromDate, f.ToDate); err != nil {
		return nil, err
	}
	ids, err := s.repos.Businesses.IDs(ctx, salesmanID, false)
	if err != nil {
		return nil, err
	}
	f.BusinessIDs = ids
	page, err := s.repos.Orders.ListWithItems(ctx, f, p)
	if err != nil {
		return nil, err
	}
	return pagination.Map(page, func(o model.OrderWithItems) model.OrderReport {
		total := CorrectedTotal(o)
		return model.OrderReport{
			OrderWithItems:        o,
			CorrectedTotal:        total,
			CorrectedTotalDisplay: fmt.Sprintf("%s %.2f", s.currencyPrefix, total),
		}
	}), nil
}

// CorrectedTotal is the order's grand total less the line amount (price times
// quantity) of every returned item.
func CorrectedTotal(o model.OrderWithItems) float64 {
	total := o.GrandTotal
	for _, it := range o.Items {
		if it.Status == model.StatusReturned {
			total -= it.LineAmount()
		}
	}
	return total
}

func (s *reportService) BusinessAllOrders(ctx context.Context, salesmanID int64, f repository.OrderFilter, p pagination.Params) (*pagination.Page[model.Order], error) {
	if err := checkDates(f.FromDate, f.ToDate); err != nil {
		return nil, err
	}
	ids, err := s.repos.Businesses.IDs(ctx, salesmanID, false)
	if err != nil {
		return nil, err
	}
	f.BusinessIDs = ids
	return s.repos.Orders.List(ctx, f, p)
}

func (s *reportService) Targets(ctx context.Context, f repository.TargetReportFilter) ([]model.TargetReportRow, error) {
	if err := checkDates(f.FromDate, f.ToDate); err != nil {
		return nil, err
	}
	return s.repos.Targets.Report(ctx, f)
}

func (s *reportService) Followups(ctx context.Context, f repository.FollowupReportFilter) ([]model.FollowupReportRow, error) {
	if err := checkDates(f.FromDate, f.ToDate); err != nil {
		return nil, err
	}
	return s.repos.Followups.Report(ctx, f)
}

func (s *reportService) Salesmen(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.Salesman], error) {
	return s.repos.Salesmen.List(ctx, keyword, sort, p)
}

func (s *reportService) SalesmanOrders(ctx context.Context, f repository.SalesmanOrderFilter, p pagination.Params) (*pagination.Page[model.SalesmanOrder], error) {
	if err := checkDates(f.FromDate, f.ToDate); err != nil {
		return nil, err
	}
	for _, code := range strings.Split(f.Statuses, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if n, err := strconv.Atoi(code); err != nil || model.StatusLabel(n) == "" {
			return nil, invalid("status", "unknown status "+code)
		}
	}
	return s.repos.Orders.ListAcrossSalesmen(ctx, f, p)
}

func (s *reportService) AssignedBusinesses(ctx context.Context, f repository.AssignedFilter, p pagination.Params) (*pagination.Page[model.AssignedBusiness], error) {
	return s.repos.Businesses.Assigned(ctx, f, p)
}

func (s *reportService) CrossParts(ctx context.Context, partNumber, supID string, sort query.Direction, p pagination.Params) (*pagination.Page[model.CrossPart], error) {
	if strings.TrimSpace(partNumber) == "" {
		return nil, invalid("part_number", "is required")
	}
	return s.repos.Inventory.CrossParts(ctx, partNumber, supID, sort, p)
}

func (s *reportService) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.repos.Inventory.Suppliers(ctx)
}

func (s *reportService) InactiveBusinesses(ctx context.Context) ([]model.InactiveBusiness, error) {
	return s.repos.Businesses.Inactive(ctx)
}

func checkDates(from, to string) error {
	if err := dateParam("from_date", from, false); err != nil {
		return err
	}
	return dateParam("to_date", to, false)
}
