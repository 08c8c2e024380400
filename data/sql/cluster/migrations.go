package cluster

import (
	"embed"

	pkgsql "github.com/parkplatztransform/parkapi/pkg/sql"
)

var Migrations = pkgsql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
