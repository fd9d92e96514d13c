// Package service holds the CRM use cases: input validation, tenant checks,
// aggregate fan-out and report shaping on top of the repositories.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghayaruae/crm-server/internal/repository"
)

var (
	// ErrNotFound is returned when an entity does not exist or is not visible
	// to the caller.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned by Login for an unknown login id or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid login id or password")
)

// InputError reports a request the caller must correct.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, msg string) *InputError {
	return &InputError{Field: field, Message: msg}
}

// notFound maps a missing row to ErrNotFound and passes other errors through.
func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}

// ensureOwned reports a business outside the salesman's portfolio as missing.
func ensureOwned(ctx context.Context, businesses repository.BusinessRepository, salesmanID, businessID int64) error {
	if businessID <= 0 {
		return invalid("business_id", "is required")
	}
	ok, err := businesses.Owned(ctx, businessID, salesmanID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("business %d: %w", businessID, ErrNotFound)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates a request body and reports the first failing field by its
// JSON name.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &InputError{Message: err.Error()}
	}
	fe := verrs[0]
	return invalid(fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + fe.Param()
	case "datetime":
		return "must be a date formatted " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " element(s)"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
