package sql

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/parkplatztransform/parkapi/pkg/log"
)

const (
	migrationLockName = "perform_migration_lock"
	querySeparator    = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

// MigrationSource is a set of .sql files applied in file name order.
type MigrationSource fs.ReadDirFS

func FSMigrations(files fs.ReadDirFS) MigrationSource {
	return files
}

type Migrator struct {
	db     TxClient
	logger log.Logger
}

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	lockID, err := getLockIDByName(migrationLockName)
	if err != nil {
		return err
	}

	_, err = m.db.ExecContext(ctx, "select pg_advisory_lock($1)", lockID)
	if err != nil {
		return fmt.Errorf("get migration lock: %w", err)
	}
	defer func() {
		_, _ = m.db.ExecContext(ctx, "select pg_advisory_unlock($1)", lockID)
	}()

	_, err = m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	for _, source := range sources {
		err = m.performSourceMigrations(ctx, source)
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) performSourceMigrations(ctx context.Context, source MigrationSource) error {
	migrationIDs, err := migrationFileNames(source)
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		migrationSQL, err := fs.ReadFile(source, migrationID)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", migrationID, err)
		}

		err = m.performMigration(ctx, migrationID, string(migrationSQL))
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	if migrationSQL == "" {
		return fmt.Errorf("migration %s is empty", migrationID)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start migration transaction: %w", err)
	}

	err = m.processMigration(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit migration transaction: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	return nil
}

func (m *Migrator) processMigration(ctx context.Context, client Client, migrationID, migrationSQL string) error {
	_, err := client.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}
		if _, err = client.ExecContext(ctx, query); err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var migrationIDs []string
	err := m.db.SelectContext(ctx, &migrationIDs, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(migrationIDs))
	for _, id := range migrationIDs {
		result[id] = struct{}{}
	}
	return result, nil
}

func migrationFileNames(source MigrationSource) ([]string, error) {
	entries, err := source.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}

	return result, nil
}
