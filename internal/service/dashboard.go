package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ghayaruae/crm-server/internal/clock"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/repository"
)

// IdleAfter is how long a business may go without ordering before it is
// listed as idle.
const IdleAfter = 2 * 24 * time.Hour

// LastInquiries is how many part inquiries the team leader dashboard shows.
const LastInquiries = 5

// DashboardService computes the salesman and team leader dashboards.
type DashboardService interface {
	Data(ctx context.Context, salesmanID int64) (*model.DashboardData, error)
	IdleBusinesses(ctx context.Context, salesmanID int64, p pagination.Params) (*pagination.Page[model.IdleBusiness], error)
	MonthlySales(ctx context.Context, salesmanID int64, from, to string) (*model.SalesChart, error)
	TargetChart(ctx context.Context, salesmanID int64) (*model.TargetChart, error)
	// DailySales reports delivered items on day, or today when day is blank.
	DailySales(ctx context.Context, salesmanID int64, day string) (string, *model.DailySales, error)
	States(ctx context.Context, salesmanID int64) (*model.DashboardStates, error)

	TeamLeaderStates(ctx context.Context) (*model.TeamLeaderStates, error)
	TargetAchievement(ctx context.Context) (*model.TargetAchievementReport, error)
	LastPartInquiries(ctx context.Context) ([]model.PartInquiry, error)
	FollowTypeChart(ctx context.Context) (*model.FollowTypeChart, error)
}

// DashboardRepos groups the repositories DashboardService reads.
type DashboardRepos struct {
	Businesses   repository.BusinessRepository
	Orders       repository.OrderRepository
	Salesmen     repository.SalesmanRepository
	Targets      repository.TargetRepository
	Followups    repository.FollowupRepository
	PartRequests repository.PartRequestRepository
}

type dashboardService struct {
	repos DashboardRepos
	clock clock.Clock
	log   zerolog.Logger
}

// NewDashboardService constructs a DashboardService. Expiry, idleness and the
// default report day are judged against c.
func NewDashboardService(repos DashboardRepos, c clock.Clock, log zerolog.Logger) DashboardService {
	return &dashboardService{repos: repos, clock: c, log: log}
}

func (s *dashboardService) Data(ctx context.Context, salesmanID int64) (*model.DashboardData, error) {
	sm, err := s.repos.Salesmen.FindByID(ctx, salesmanID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("salesman %d", salesmanID))
	}
	ids, err := s.repos.Businesses.IDs(ctx, salesmanID, true)
	if err != nil {
		return nil, err
	}

	var (
		counts model.DashboardCounts
		target *model.Target
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.TotalAssignBusiness, err = s.repos.Businesses.Count(gctx, repository.BusinessCountFilter{SalesmanID: salesmanID, ExcludeDeleted: true})
		return err
	})
	g.Go(func() (err error) {
		counts.TotalInactiveBusiness, err = s.repos.Businesses.Count(gctx, repository.BusinessCountFilter{SalesmanID: salesmanID, InactiveOnly: true, ExcludeDeleted: true})
		return err
	})
	g.Go(func() (err error) {
		counts.TotalPendingOrders, err = s.repos.Orders.CountPending(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		target, err = s.latestTarget(gctx, salesmanID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	info := model.SalesmanPerformance{Salesman: sm}
	if target != nil {
		achieved, err := s.repos.Orders.SumGrandTotal(ctx, repository.SalesFilter{
			BusinessIDs: ids,
			From:        target.From.String(),
			To:          target.To.String(),
		})
		if err != nil {
			return nil, err
		}
		info.TargetAmount = target.Amount
		info.TargetFrom = &target.From
		info.TargetTo = &target.To
		info.AchievedAmount = achieved
		info.PendingAmount = math.Max(target.Amount-achieved, 0)
	}
	return &model.DashboardData{Success: true, Data: counts, SalesmanInfo: info}, nil
}

// IdleBusinesses pages businesses idle since before the cutoff and fills in
// how many days each has gone without an order, counting from registration
// when it never ordered.
func (s *dashboardService) IdleBusinesses(ctx context.Context, salesmanID int64, p pagination.Params) (*pagination.Page[model.IdleBusiness], error) {
	today := clock.Today(s.clock)
	page, err := s.repos.Businesses.Idle(ctx, repository.IdleFilter{
		SalesmanID: salesmanID,
		Cutoff:     today.Add(-IdleAfter),
	}, p)
	if err != nil {
		return nil, err
	}
	for i := range page.Data {
		b := &page.Data[i]
		switch {
		case b.LastOrderDate != nil:
			b.NoOrderSinceDays = daysBetween(*b.LastOrderDate, today)
		case b.RegisteredDate != nil:
			b.NoOrderSinceDays = daysBetween(*b.RegisteredDate, today)
		}
	}
	return page, nil
}

func (s *dashboardService) MonthlySales(ctx context.Context, salesmanID int64, from, to string) (*model.SalesChart, error) {
	if err := dateParam("from_date", from, true); err != nil {
		return nil, err
	}
	if err := dateParam("to_date", to, true); err != nil {
		return nil, err
	}
	points, err := s.repos.Orders.DailySeries(ctx, salesmanID, from, to)
	if err != nil {
		return nil, err
	}
	chart := &model.SalesChart{
		Labels: make([]string, 0, len(points)),
		Sales:  make([]float64, 0, len(points)),
		Orders: make([]int64, 0, len(points)),
	}
	for _, p := range points {
		chart.Labels = append(chart.Labels, p.Day.String())
		chart.Sales = append(chart.Sales, p.Sales)
		chart.Orders = append(chart.Orders, p.Orders)
	}
	return chart, nil
}

// TargetChart compares the latest target with delivered sales in its window.
// A target whose end date has passed reports no achievement.
func (s *dashboardService) TargetChart(ctx context.Context, salesmanID int64) (*model.TargetChart, error) {
	target, err := s.latestTarget(ctx, salesmanID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return &model.TargetChart{}, nil
	}

	chart := &model.TargetChart{
		TotalTarget:  target.Amount,
		TotalPending: target.Amount,
		TargetFrom:   &target.From,
		TargetTo:     &target.To,
	}
	if clock.Today(s.clock).After(calendarDay(target.To.Time, s.clock.Now().Location())) {
		chart.TargetExpired = true
		return chart, nil
	}

	ids, err := s.repos.Businesses.IDs(ctx, salesmanID, true)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return chart, nil
	}
	achieved, err := s.repos.Orders.SumGrandTotal(ctx, repository.SalesFilter{
		BusinessIDs:   ids,
		From:          target.From.String(),
		To:            target.To.String(),
		DeliveredOnly: true,
	})
	if err != nil {
		return nil, err
	}
	chart.TotalAchievement = achieved
	chart.TotalPending = math.Max(target.Amount-achieved, 0)
	chart.AboveAchievement = math.Max(achieved-target.Amount, 0)
	return chart, nil
}

func (s *dashboardService) DailySales(ctx context.Context, salesmanID int64, day string) (string, *model.DailySales, error) {
	if day == "" {
		day = clock.Today(s.clock).Format(model.DateLayout)
	} else if err := dateParam("date", day, true); err != nil {
		return "", nil, err
	}

	ids, err := s.repos.Businesses.IDs(ctx, salesmanID, false)
	if err != nil {
		return "", nil, err
	}
	sales, err := s.repos.Orders.DailySales(ctx, ids, day)
	if err != nil {
		return "", nil, err
	}
	if sales == nil {
		sales = &model.DailySales{SaleDate: day}
	}
	return day, sales, nil
}

func (s *dashboardService) States(ctx context.Context, salesmanID int64) (*model.DashboardStates, error) {
	total, err := s.repos.Businesses.Count(ctx, repository.BusinessCountFilter{SalesmanID: salesmanID})
	if err != nil {
		return nil, err
	}
	ids, err := s.repos.Businesses.IDs(ctx, salesmanID, false)
	if err != nil {
		return nil, err
	}
	pending, err := s.repos.Orders.CountPending(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &model.DashboardStates{TotalBusiness: total, TotalPendingOrders: pending}, nil
}

func (s *dashboardService) TeamLeaderStates(ctx context.Context) (*model.TeamLeaderStates, error) {
	var (
		out      model.TeamLeaderStates
		ids      []int64
		inactive int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalSalesman, err = s.repos.Salesmen.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalSalesmanTargets, err = s.repos.Targets.Sum(gctx)
		return err
	})
	g.Go(func() (err error) {
		ids, inactive, err = s.repos.Businesses.AssignedSummary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals, err := s.repos.Orders.Totals(ctx, ids)
	if err != nil {
		return nil, err
	}
	out.TotalAssignedBusiness = int64(len(ids))
	out.BusinessInActive = inactive
	out.TotalOrders = totals.TotalOrders
	out.TotalPendingOrders = totals.PendingOrders
	out.PendingAmount = fmt.Sprintf("%.2f", totals.PendingAmount)
	return &out, nil
}

// TargetAchievement compares every target period of every salesman with the
// grand total of orders placed in it. Met or exceeded targets go above.
func (s *dashboardService) TargetAchievement(ctx context.Context) (*model.TargetAchievementReport, error) {
	salesmen, err := s.repos.Salesmen.All(ctx)
	if err != nil {
		return nil, err
	}
	report := &model.TargetAchievementReport{
		AboveTarget: []model.TargetAchievement{},
		BelowTarget: []model.TargetAchievement{},
	}
	for _, sm := range salesmen {
		targets, err := s.repos.Targets.BySalesman(ctx, sm.SalesmanID)
		if err != nil {
			return nil, err
		}
		if len(targets) == 0 {
			continue
		}
		ids, err := s.repos.Businesses.IDs(ctx, sm.SalesmanID, false)
		if err != nil {
			return nil, err
		}
		for _, t := range targets {
			achieved, err := s.repos.Orders.SumGrandTotal(ctx, repository.SalesFilter{
				BusinessIDs: ids,
				From:        t.From.String(),
				To:          t.To.String(),
			})
			if err != nil {
				return nil, err
			}
			row := model.TargetAchievement{
				SalesmanID:       sm.SalesmanID,
				SalesmanName:     sm.Name,
				SalesmanEmail:    sm.Email,
				SalesmanContact:  sm.ContactNumber,
				TargetFrom:       t.From,
				TargetTo:         t.To,
				TotalTarget:      t.Amount,
				TotalAchievement: achieved,
				Difference:       achieved - t.Amount,
			}
			if row.Difference >= 0 {
				report.AboveTarget = append(report.AboveTarget, row)
			} else {
				report.BelowTarget = append(report.BelowTarget, row)
			}
		}
	}
	return report, nil
}

func (s *dashboardService) LastPartInquiries(ctx context.Context) ([]model.PartInquiry, error) {
	return s.repos.PartRequests.Latest(ctx, LastInquiries)
}

func (s *dashboardService) FollowTypeChart(ctx context.Context) (*model.FollowTypeChart, error) {
	return s.repos.Followups.TypeChart(ctx)
}

func (s *dashboardService) latestTarget(ctx context.Context, salesmanID int64) (*model.Target, error) {
	t, err := s.repos.Targets.Latest(ctx, salesmanID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// calendarDay places the date part of t at midnight in loc. Stored dates
// carry no zone of their own, so the wall date is kept as is.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func daysBetween(from, today time.Time) int {
	days := today.Sub(calendarDay(from, today.Location())).Hours() / 24
	return int(math.Round(days))
}

// dateParam checks an optional YYYY-MM-DD query value.
func dateParam(field, v string, required bool) error {
	if v == "" {
		if required {
			return invalid(field, "is required")
		}
		return nil
	}
	if _, err := model.ParseDate(v); err != nil {
		return invalid(field, "must be a date formatted "+model.DateLayout)
	}
	return nil
}
