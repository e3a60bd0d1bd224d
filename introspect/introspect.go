package introspect

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ridoystarlord/entigen/database"
	"github.com/ridoystarlord/entigen/schema"
	"github.com/ridoystarlord/entigen/utils"
)

// Source reads table and column metadata for one schema.
type Source interface {
	// ListTables returns base tables (no views) ordered by name.
	ListTables(ctx context.Context, schemaName string) ([]schema.Table, error)
	// ListColumns returns every column of the schema ordered by table name
	// then ordinal position.
	ListColumns(ctx context.Context, schemaName string) ([]schema.Column, error)
	Close() error
}

// Connect opens the Source selected by s.Driver.
func Connect(ctx context.Context, s *utils.Settings) (Source, error) {
	switch s.Driver {
	case utils.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, s)
		if err != nil {
			return nil, err
		}
		return &PostgresSource{q: pool, close: pool.Close}, nil
	default:
		db, err := database.OpenMySQL(ctx, s)
		if err != nil {
			return nil, err
		}
		return NewMySQLSource(db), nil
	}
}

// LoadSnapshot reads tables and columns of schemaName into a Snapshot.
func LoadSnapshot(ctx context.Context, src Source, schemaName string) (*schema.Snapshot, error) {
	tables, err := src.ListTables(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	columns, err := src.ListColumns(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}

	return &schema.Snapshot{
		Database: schemaName,
		Tables:   tables,
		Columns:  columns,
	}, nil
}

const mysqlTablesQuery = `
	SELECT TABLE_NAME, TABLE_COMMENT
	FROM INFORMATION_SCHEMA.TABLES
	WHERE TABLE_TYPE = 'BASE TABLE' AND TABLE_SCHEMA = ?
	ORDER BY TABLE_NAME ASC`

const mysqlColumnsQuery = `
	SELECT COLUMN_NAME, COLUMN_TYPE, IS_NULLABLE, COLUMN_KEY, COLUMN_DEFAULT, EXTRA, COLUMN_COMMENT, TABLE_NAME
	FROM INFORMATION_SCHEMA.COLUMNS
	WHERE TABLE_SCHEMA = ?
	ORDER BY TABLE_NAME ASC, ORDINAL_POSITION ASC`

// MySQLSource reads information_schema of a MariaDB or MySQL server.
type MySQLSource struct {
	db *sql.DB
}

// NewMySQLSource wraps an open database handle.
func NewMySQLSource(db *sql.DB) *MySQLSource {
	return &MySQLSource{db: db}
}

// ListTables returns the base tables of schemaName ordered by name.
func (m *MySQLSource) ListTables(ctx context.Context, schemaName string) ([]schema.Table, error) {
	rows, err := m.db.QueryContext(ctx, mysqlTablesQuery, schemaName)
	if err != nil {
		return nil, fmt.Errorf("querying tables: %w", err)
	}
	defer rows.Close()

	var tables []schema.Table
	for rows.Next() {
		var t schema.Table
		var comment sql.NullString
		if err := rows.Scan(&t.Name, &comment); err != nil {
			return nil, fmt.Errorf("scanning table: %w", err)
		}
		t.Comment = comment.String
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table rows: %w", err)
	}

	return tables, nil
}

// ListColumns returns the columns of schemaName ordered by table and
// ordinal position.
func (m *MySQLSource) ListColumns(ctx context.Context, schemaName string) ([]schema.Column, error) {
	rows, err := m.db.QueryContext(ctx, mysqlColumnsQuery, schemaName)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	var columns []schema.Column
	for rows.Next() {
		var (
			col                 schema.Column
			nullable, key       string
			def, extra, comment sql.NullString
		)
		if err := rows.Scan(
			&col.Name,
			&col.Type,
			&nullable,
			&key,
			&def,
			&extra,
			&comment,
			&col.TableName,
		); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		col.Nullable = schema.ParseNullable(nullable)
		col.Key = schema.ParseKeyRole(key)
		if def.Valid {
			col.Default = &def.String
		}
		col.Extra = extra.String
		col.Comment = comment.String
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}

	return columns, nil
}

// Close closes the underlying database handle.
func (m *MySQLSource) Close() error {
	return m.db.Close()
}
