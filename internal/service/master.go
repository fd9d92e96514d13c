package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ghayaruae/crm-server/internal/clock"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

// MasterService manages targets, followups and part inquiries.
type MasterService interface {
	SaveTarget(ctx context.Context, callerID int64, in model.TargetInput) (int64, error)
	ListTargets(ctx context.Context, salesmanID *int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Target], error)
	GetTarget(ctx context.Context, targetID int64) (*model.Target, error)
	DeleteTarget(ctx context.Context, targetID int64) error
	SalesmanOptions(ctx context.Context) ([]model.SalesmanOption, error)

	SaveFollowup(ctx context.Context, in model.FollowupInput) (int64, error)
	ListFollowups(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.FollowupListItem], error)
	GetFollowup(ctx context.Context, followupID int64) (*model.Followup, error)
	DeleteFollowup(ctx context.Context, followupID int64) error

	SavePartRequest(ctx context.Context, callerID int64, in model.PartRequestInput) (int64, error)
	ListPartRequests(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.PartRequest], error)
	GetPartRequest(ctx context.Context, requestID int64) (*model.PartRequest, error)
	DeletePartRequest(ctx context.Context, requestID int64) error
}

// MasterRepos groups the repositories MasterService needs.
type MasterRepos struct {
	Targets      repository.TargetRepository
	Followups    repository.FollowupRepository
	PartRequests repository.PartRequestRepository
	Salesmen     repository.SalesmanRepository
}

type masterService struct {
	repos MasterRepos
	clock clock.Clock
	log   zerolog.Logger
}

// NewMasterService constructs a MasterService. Writes are stamped with c.
func NewMasterService(repos MasterRepos, c clock.Clock, log zerolog.Logger) MasterService {
	return &masterService{repos: repos, clock: c, log: log}
}

func (s *masterService) SaveTarget(ctx context.Context, callerID int64, in model.TargetInput) (int64, error) {
	if err := check(in); err != nil {
		return 0, err
	}
	from, _ := model.ParseDate(in.From)
	to, _ := model.ParseDate(in.To)
	if to.Before(from.Time) {
		return 0, invalid("business_salesman_target_to", "must not be before business_salesman_target_from")
	}

	now := s.clock.Now()
	t := &model.Target{
		SalesmanID:   in.SalesmanID,
		From:         from,
		To:           to,
		Amount:       in.Amount,
		AssignedBy:   &callerID,
		AssignedTime: &now,
	}
	if in.TargetID != nil {
		t.TargetID = *in.TargetID
	}
	id, err := s.repos.Targets.Save(ctx, t)
	if err != nil {
		return 0, notFound(err, fmt.Sprintf("target %d", t.TargetID))
	}
	s.log.Info().Str("event", "target_saved").Int64("target_id", id).Int64("assigned_by", callerID).Send()
	return id, nil
}

func (s *masterService) ListTargets(ctx context.Context, salesmanID *int64, sort query.Direction, p pagination.Params) (*pagination.Page[model.Target], error) {
	return s.repos.Targets.List(ctx, salesmanID, sort, p)
}

func (s *masterService) GetTarget(ctx context.Context, targetID int64) (*model.Target, error) {
	t, err := s.repos.Targets.Get(ctx, targetID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("target %d", targetID))
	}
	return t, nil
}

func (s *masterService) DeleteTarget(ctx context.Context, targetID int64) error {
	n, err := s.repos.Targets.Delete(ctx, targetID)
	return deleted(n, err, fmt.Sprintf("target %d", targetID))
}

func (s *masterService) SalesmanOptions(ctx context.Context) ([]model.SalesmanOption, error) {
	return s.repos.Salesmen.Options(ctx)
}

func (s *masterService) SaveFollowup(ctx context.Context, in model.FollowupInput) (int64, error) {
	if err := check(in); err != nil {
		return 0, err
	}
	date, _ := model.ParseDate(in.Date)
	f := &model.Followup{
		SalesmanID: in.SalesmanID,
		BusinessID: in.BusinessID,
		Type:       in.Type,
		Date:       date,
		Response:   in.Response,
		Remark:     in.Remark,
	}
	if in.FollowupID != nil {
		f.FollowupID = *in.FollowupID
	}
	id, err := s.repos.Followups.Save(ctx, f)
	if err != nil {
		return 0, notFound(err, fmt.Sprintf("followup %d", f.FollowupID))
	}
	return id, nil
}

func (s *masterService) ListFollowups(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.FollowupListItem], error) {
	return s.repos.Followups.List(ctx, keyword, sort, p)
}

func (s *masterService) GetFollowup(ctx context.Context, followupID int64) (*model.Followup, error) {
	f, err := s.repos.Followups.Get(ctx, followupID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("followup %d", followupID))
	}
	return f, nil
}

func (s *masterService) DeleteFollowup(ctx context.Context, followupID int64) error {
	n, err := s.repos.Followups.Delete(ctx, followupID)
	return deleted(n, err, fmt.Sprintf("followup %d", followupID))
}

// SavePartRequest records an inquiry from the caller. New and edited
// inquiries go back to status 0 with the request date set to now.
func (s *masterService) SavePartRequest(ctx context.Context, callerID int64, in model.PartRequestInput) (int64, error) {
	if err := check(in); err != nil {
		return 0, err
	}
	pr := &model.PartRequest{
		SalesmanID:  &callerID,
		PartName:    in.PartName,
		BrandName:   in.BrandName,
		PartNumber:  in.PartNumber,
		Qty:         in.Qty,
		Note:        in.Note,
		MarketPrice: in.MarketPrice,
		Supersedes:  in.Supersedes,
		RequestDate: s.clock.Now(),
	}
	if in.RequestID != nil {
		pr.RequestID = *in.RequestID
	}
	id, err := s.repos.PartRequests.Save(ctx, pr)
	if err != nil {
		return 0, notFound(err, fmt.Sprintf("part inquiry %d", pr.RequestID))
	}
	return id, nil
}

func (s *masterService) ListPartRequests(ctx context.Context, keyword string, sort query.Direction, p pagination.Params) (*pagination.Page[model.PartRequest], error) {
	return s.repos.PartRequests.List(ctx, keyword, sort, p)
}

func (s *masterService) GetPartRequest(ctx context.Context, requestID int64) (*model.PartRequest, error) {
	pr, err := s.repos.PartRequests.Get(ctx, requestID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("part inquiry %d", requestID))
	}
	return pr, nil
}

func (s *masterService) DeletePartRequest(ctx context.Context, requestID int64) error {
	n, err := s.repos.PartRequests.Delete(ctx, requestID)
	return deleted(n, err, fmt.Sprintf("part inquiry %d", requestID))
}

func deleted(n int64, err error, what string) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
