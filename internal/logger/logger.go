// Package logger builds the service's zerolog logger from validated settings.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Config struct {
	Level       string `json:"level,omitempty" validate:"oneof=debug info warn error"`
	Format      string `json:"format,omitempty" validate:"oneof=json console"`
	Env         string `json:"env,omitempty" validate:"oneof=dev staging prod"`
	ServiceName string `json:"serviceName,omitempty" validate:"required"`
	TimeField   string `json:"timeField,omitempty"`
	WithCaller  bool   `json:"withCaller,omitempty"`

	// Out overrides the destination; stdout when nil.
	Out io.Writer `json:"-"`
	// Location is used to render timestamps; UTC when nil.
	Location *time.Location `json:"-"`
}

// New validates cfg and returns a logger. The level is applied to the
// returned logger only, so tests can build independent loggers.
func New(cfg *Config) (zerolog.Logger, error) {
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation error: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = time.RFC3339Nano
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(loc) }

	var w io.Writer = cfg.Out
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: cfg.Out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Env)
	if cfg.WithCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), nil
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.ServiceName == "" {
		c.ServiceName = "crm-server"
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
}
