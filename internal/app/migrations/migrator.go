package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrolldesk/enrolldesk/internal/pkg/logger"
)

// migration pairs a version with the SQL applying it. Versions are applied
// in slice order and recorded in schema_migrations.
type migration struct {
	version string
	sql     string
}

var migrationList = []migration{
	{
		version: "001",
		sql: `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password VARCHAR(100) NOT NULL,
			full_name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	},
	{
		version: "002",
		sql: `
		CREATE TABLE IF NOT EXISTS students (
			id BIGSERIAL PRIMARY KEY,
			student_id VARCHAR(8) UNIQUE NOT NULL,
			first_name VARCHAR(50) NOT NULL,
			middle_name VARCHAR(50) NOT NULL DEFAULT '',
			last_name VARCHAR(50) NOT NULL,
			email VARCHAR(100) NOT NULL,
			phone VARCHAR(13) NOT NULL,
			department VARCHAR(100) NOT NULL,
			course VARCHAR(100) NOT NULL,
			year_level VARCHAR(10) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Enrolled',
			enrollment_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	},
	{
		version: "003",
		sql: `
		CREATE INDEX IF NOT EXISTS idx_students_last_name ON students (last_name);
		CREATE INDEX IF NOT EXISTS idx_students_course ON students (course);`,
	},
}

// Migrator manages database migrations
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{
		db: db,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := m.db.Exec(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	err := m.db.QueryRow(ctx, query, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Migrate applies all pending migrations in order, each inside its own
// transaction.
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, mig := range migrationList {
		applied, err := m.isMigrationApplied(ctx, mig.version)
		if err != nil {
			return err
		}
		if applied {
			logger.Debug().Str("version", mig.version).Msg("Migration already applied, skipping")
			continue
		}

		tx, err := m.db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}

		if _, err := tx.Exec(ctx, mig.sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("migration %s failed: %w", mig.version, err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
			mig.version, time.Now()); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to record migration: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		logger.Info().Str("version", mig.version).Msg("Migration applied")
	}

	return nil
}
