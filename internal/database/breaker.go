package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// BreakerConfig tunes the database circuit breaker.
type BreakerConfig struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// MinRequests consecutive failures trip the breaker.
	MinRequests uint32
}

// DefaultBreakerConfig opens after 5 consecutive failures and probes again
// after 30 seconds.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:        "database",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		MinRequests: 5,
	}
}

// Breaker wraps a pool with circuit breaker protection. While open, every
// statement fails fast with an error for which IsUnavailable is true.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
	db DB
}

var _ DB = (*Breaker)(nil)

// NewBreaker wraps db using cfg. State changes are logged through log.
func NewBreaker(db DB, cfg BreakerConfig, log zerolog.Logger) *Breaker {
	st := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= cfg.MinRequests
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
		IsSuccessful: isSuccessful,
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker(st), db: db}
}

// Caller-side outcomes do not count against the store.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, sql.ErrTxDone)
}

// IsUnavailable reports whether err was produced by an open or saturated breaker.
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func (b *Breaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return res.(*sql.Rows), nil
}

func (b *Breaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return res.(sql.Result), nil
}

// QueryRowContext defers its error to Scan, so it bypasses the breaker.
func (b *Breaker) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return b.db.QueryRowContext(ctx, query, args...)
}

func (b *Breaker) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.db.BeginTx(ctx, opts)
	})
	if err != nil {
		return nil, err
	}
	return res.(*sql.Tx), nil
}

func (b *Breaker) PingContext(ctx context.Context) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.db.PingContext(ctx)
	})
	return err
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
