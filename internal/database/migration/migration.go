package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghayaruae/crm-server/internal/database"
	"github.com/ghayaruae/crm-server/internal/query"
)

// The CRM tables belong to the ordering platform. This service only owns the
// business document metadata table.
const sentinelTable = "business__documents"

type migrationStep struct {
	Name string
	SQL  string
}

var mysqlSteps = []migrationStep{
	{
		Name: "create_table_business_documents",
		SQL: `CREATE TABLE IF NOT EXISTS business__documents (
  document_id  CHAR(36)     NOT NULL PRIMARY KEY,
  business_id  BIGINT       NOT NULL,
  filename     VARCHAR(255) NOT NULL,
  storage_path VARCHAR(512) NOT NULL UNIQUE,
  size         BIGINT       NOT NULL,
  content_type VARCHAR(255) NOT NULL,
  uploaded_by  BIGINT       NOT NULL,
  created_at   DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
  INDEX idx_business_documents_business (business_id),
  INDEX idx_business_documents_created_at (created_at)
)`,
	},
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_business_documents",
		SQL: `CREATE TABLE IF NOT EXISTS business__documents (
  document_id  UUID        PRIMARY KEY,
  business_id  BIGINT      NOT NULL,
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  uploaded_by  BIGINT      NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	},
	{
		Name: "create_index_business_documents_business",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_business_documents_business ON business__documents (business_id)`,
	},
	{
		Name: "create_index_business_documents_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_business_documents_created_at ON business__documents (created_at)`,
	},
}

func stepsFor(d query.Dialect) []migrationStep {
	if d.Name == query.Postgres.Name {
		return postgresSteps
	}
	return mysqlSteps
}

func sentinelQuery(d query.Dialect) string {
	schema := "DATABASE()"
	if d.Name == query.Postgres.Name {
		schema = "current_schema()"
	}
	return d.Rebind("SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = " + schema + " AND table_name = ?")
}

// EnsureMigrated creates the document metadata table when it is missing.
func EnsureMigrated(ctx context.Context, db database.DB, d query.Dialect, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Msg("checking schema")

	var n int
	if err := db.QueryRowContext(ctx, sentinelQuery(d), sentinelTable).Scan(&n); err != nil {
		log.Error().
			Err(err).
			Str("event", "db_migration_failed").
			Str("status", "error").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if n > 0 {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Msg("migrating")

	for _, step := range stepsFor(d) {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Err(err).
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("migration complete")

	return nil
}
