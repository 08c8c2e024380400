package sql_test

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqluser "github.com/parkplatztransform/parkapi/data/sql/user"
	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/user/domain"
	infrasql "github.com/parkplatztransform/parkapi/internal/user/infra/sql"
)

var (
	columnDefinitionPattern = regexp.MustCompile(`^\s+([a-z_]+)\s`)
	setColumnPattern        = regexp.MustCompile(`([a-z_]+)\s*=`)
	insertColumnsPattern    = regexp.MustCompile(`INTO "user" \(([^)]*)\)`)
)

func TestUserRepository_Store_ReferencesOnlyExistingColumns(t *testing.T) {
	client := &recordingClient{}
	repo := infrasql.NewUserRepository(client)

	err := repo.Store(context.Background(), &domain.User{
		ID:              domain.UserID{UUID: uuid.New()},
		Email:           "someone@example.com",
		PermissionLevel: auth.PermissionLevelGuest,
		CreatedAt:       time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, client.execQueries, 1)

	columns := userTableColumns(t)
	references := storeColumnReferences(client.execQueries[0])
	require.NotEmpty(t, references)
	for _, column := range references {
		assert.Contains(t, columns, column)
	}
}

// userTableColumns extracts the column names from the embedded DDL, so the
// upsert cannot silently target a column the table does not have.
func userTableColumns(t *testing.T) []string {
	entries, err := sqluser.Migrations.ReadDir(".")
	require.NoError(t, err)

	var columns []string
	for _, entry := range entries {
		ddl, err := fs.ReadFile(sqluser.Migrations, entry.Name())
		require.NoError(t, err)

		for _, line := range strings.Split(string(ddl), "\n") {
			if matches := columnDefinitionPattern.FindStringSubmatch(line); matches != nil {
				columns = append(columns, matches[1])
			}
		}
	}
	require.NotEmpty(t, columns)

	return columns
}

func storeColumnReferences(query string) []string {
	var columns []string
	if matches := insertColumnsPattern.FindStringSubmatch(query); matches != nil {
		for _, column := range strings.Split(matches[1], ",") {
			columns = append(columns, strings.TrimSpace(column))
		}
	}
	for _, matches := range setColumnPattern.FindAllStringSubmatch(query, -1) {
		columns = append(columns, matches[1])
	}

	return columns
}

type recordingClient struct {
	execQueries []string
}

func (c *recordingClient) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	c.execQueries = append(c.execQueries, query)
	return nil, nil
}

func (c *recordingClient) NamedExecContext(context.Context, string, any) (sql.Result, error) {
	return nil, errors.New("unexpected call")
}

func (c *recordingClient) GetContext(context.Context, any, string, ...any) error {
	return errors.New("unexpected call")
}

func (c *recordingClient) SelectContext(context.Context, any, string, ...any) error {
	return errors.New("unexpected call")
}
