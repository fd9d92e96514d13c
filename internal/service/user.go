package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ghayaruae/crm-server/internal/auth"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
)

// UserService covers salesman login and privilege management.
type UserService interface {
	Login(ctx context.Context, in model.LoginInput) (*model.LoginResult, error)
	PrivilegeCatalog(ctx context.Context) ([]model.Privilege, error)
	UpdatePermissions(ctx context.Context, in model.PermissionsInput) error
	SavePrivilege(ctx context.Context, in model.PrivilegeInput) (int64, error)
	ListPrivileges(ctx context.Context, sort query.Direction, p pagination.Params) (*pagination.Page[model.Privilege], error)
}

type userService struct {
	salesmen   repository.SalesmanRepository
	privileges repository.PrivilegeRepository
	tokens     *auth.Tokens
	log        zerolog.Logger
}

// NewUserService constructs a UserService.
func NewUserService(salesmen repository.SalesmanRepository, privileges repository.PrivilegeRepository, tokens *auth.Tokens, log zerolog.Logger) UserService {
	return &userService{salesmen: salesmen, privileges: privileges, tokens: tokens, log: log}
}

func (s *userService) Login(ctx context.Context, in model.LoginInput) (*model.LoginResult, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	sm, err := s.salesmen.FindByLoginID(ctx, in.LoginID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find salesman: %w", err)
	}
	if !auth.CheckPassword(sm.Password, in.Password) {
		s.log.Warn().Str("event", "login_rejected").Int64("salesman_id", sm.SalesmanID).Send()
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(sm.SalesmanID)
	if err != nil {
		return nil, err
	}
	sm.Password = ""
	return &model.LoginResult{Salesman: *sm, Token: token, ExpiresAt: exp}, nil
}

func (s *userService) PrivilegeCatalog(ctx context.Context) ([]model.Privilege, error) {
	return s.privileges.Catalog(ctx)
}

func (s *userService) UpdatePermissions(ctx context.Context, in model.PermissionsInput) error {
	if err := check(in); err != nil {
		return err
	}
	ok, err := s.salesmen.Exists(ctx, in.SalesmanID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("salesman %d: %w", in.SalesmanID, ErrNotFound)
	}
	return s.privileges.ReplacePermissions(ctx, in.SalesmanID, in.Permissions)
}

func (s *userService) SavePrivilege(ctx context.Context, in model.PrivilegeInput) (int64, error) {
	if err := check(in); err != nil {
		return 0, err
	}
	pr := &model.Privilege{Name: in.Name, Description: in.Description}
	if in.PrivilegeID != nil {
		pr.PrivilegeID = *in.PrivilegeID
	}
	id, err := s.privileges.Save(ctx, pr)
	if err != nil {
		return 0, notFound(err, "privilege")
	}
	return id, nil
}

func (s *userService) ListPrivileges(ctx context.Context, sort query.Direction, p pagination.Params) (*pagination.Page[model.Privilege], error) {
	return s.privileges.List(ctx, sort, p)
}
