package introspect

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ridoystarlord/entigen/schema"
)

type pgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads information_schema and pg_catalog of a PostgreSQL
// database. Column types are reported in the MySQL vocabulary, see
// NormalizePostgresType.
type PostgresSource struct {
	q     pgQuerier
	close func()
}

const postgresTablesQuery = `
	SELECT t.table_name::text,
		COALESCE(obj_description(format('%I.%I', t.table_schema, t.table_name)::regclass, 'pg_class'), '')
	FROM information_schema.tables t
	WHERE t.table_schema = $1 AND t.table_type = 'BASE TABLE'
	ORDER BY t.table_name`

const postgresColumnsQuery = `
	SELECT
		c.column_name::text,
		pg_catalog.format_type(a.atttypid, a.atttypmod),
		c.is_nullable::text,
		(CASE WHEN pk.column_name IS NULL THEN '' ELSE 'PRI' END),
		c.column_default,
		(CASE WHEN c.is_identity = 'YES' THEN 'auto_increment' ELSE '' END),
		COALESCE(pg_catalog.col_description(a.attrelid, a.attnum), ''),
		c.table_name::text
	FROM information_schema.columns c
	JOIN pg_catalog.pg_attribute a
		ON a.attrelid = format('%I.%I', c.table_schema, c.table_name)::regclass
		AND a.attname = c.column_name
	LEFT JOIN (
		SELECT kcu.table_name, kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = $1
	) pk ON pk.table_name = c.table_name AND pk.column_name = c.column_name
	WHERE c.table_schema = $1
	ORDER BY c.table_name, c.ordinal_position`

// ListTables returns the base tables of schemaName ordered by name.
func (p *PostgresSource) ListTables(ctx context.Context, schemaName string) ([]schema.Table, error) {
	rows, err := p.q.Query(ctx, postgresTablesQuery, schemaName)
	if err != nil {
		return nil, fmt.Errorf("querying tables: %w", err)
	}
	defer rows.Close()

	var tables []schema.Table
	for rows.Next() {
		var t schema.Table
		if err := rows.Scan(&t.Name, &t.Comment); err != nil {
			return nil, fmt.Errorf("scanning table: %w", err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table rows: %w", err)
	}

	return tables, nil
}

// ListColumns returns the columns of schemaName ordered by table and
// position, with types normalized by NormalizePostgresType.
func (p *PostgresSource) ListColumns(ctx context.Context, schemaName string) ([]schema.Column, error) {
	rows, err := p.q.Query(ctx, postgresColumnsQuery, schemaName)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	var columns []schema.Column
	for rows.Next() {
		var col schema.Column
		var nullable, key string
		if err := rows.Scan(
			&col.Name,
			&col.Type,
			&nullable,
			&key,
			&col.Default,
			&col.Extra,
			&col.Comment,
			&col.TableName,
		); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		col.SourceType = col.Type
		col.Type, _ = NormalizePostgresType(col.SourceType)
		col.Nullable = schema.ParseNullable(nullable)
		col.Key = schema.ParseKeyRole(key)
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}

	return columns, nil
}

// Close releases the connection pool.
func (p *PostgresSource) Close() error {
	if p.close != nil {
		p.close()
	}
	return nil
}

// postgresTypes lists the format_type() names that have a MySQL counterpart.
// A name matches when it is equal to from or followed by a "(" modifier.
var postgresTypes = []struct {
	from, to string
}{
	{"character varying", "varchar"},
	{"character", "char"},
	{"text", "text"},
	{"smallint", "smallint"},
	{"integer", "integer"},
	{"bigint", "bigint"},
	{"numeric", "decimal"},
	{"real", "float"},
	{"double precision", "double"},
	{"boolean", "tinyint(1)"},
	{"date", "date"},
	{"timestamp", "timestamp"},
}

// NormalizePostgresType rewrites a format_type() result into the MySQL type
// names the type mapper matches on, e.g. "numeric(10,2)" to "decimal(10,2)"
// and "timestamp(3) without time zone" to "timestamp(3)".
//
// ok is false for arrays and for types without a MySQL counterpart such as
// interval, uuid or point. The type mapper matches by substring, so those must
// never reach it under their own name.
func NormalizePostgresType(t string) (string, bool) {
	if strings.HasSuffix(t, "[]") {
		return "", false
	}
	t = strings.TrimSuffix(t, " without time zone")
	t = strings.TrimSuffix(t, " with time zone")
	for _, p := range postgresTypes {
		if t == p.from || strings.HasPrefix(t, p.from+"(") {
			return p.to + strings.TrimPrefix(t, p.from), true
		}
	}
	return "", false
}
