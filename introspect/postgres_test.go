package introspect

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/entigen/generator"
	"github.com/ridoystarlord/entigen/naming"
	"github.com/ridoystarlord/entigen/schema"
)

// fakeRows serves fixed rows through pgx.Rows. Scan fills *string and
// **string destinations the way pgx does, NULL leaving a **string nil.
type fakeRows struct {
	rows   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.pos-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("number of field descriptions must equal number of destinations, got %d and %d", len(row), len(dest))
	}
	for i, d := range dest {
		switch d := d.(type) {
		case *string:
			s, ok := row[i].(string)
			if !ok {
				return fmt.Errorf("can't scan into dest[%d]: cannot scan %T into *string", i, row[i])
			}
			*d = s
		case **string:
			if row[i] == nil {
				*d = nil
				continue
			}
			s, ok := row[i].(string)
			if !ok {
				return fmt.Errorf("can't scan into dest[%d]: cannot scan %T into **string", i, row[i])
			}
			*d = &s
		default:
			return fmt.Errorf("can't scan into dest[%d]: unsupported type %T", i, d)
		}
	}
	return nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
	args []any
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestPostgresListTables(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"orders", "Customer orders"},
		{"users", ""},
	}}}
	src := &PostgresSource{q: q}

	tables, err := src.ListTables(context.Background(), "public")
	require.NoError(t, err)
	assert.Equal(t, []schema.Table{
		{Name: "orders", Comment: "Customer orders"},
		{Name: "users"},
	}, tables)
	assert.Equal(t, postgresTablesQuery, q.sql)
	assert.Equal(t, []any{"public"}, q.args)
	assert.True(t, q.rows.closed)
}

func TestPostgresListColumns(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"id", "bigint", "NO", "PRI", nil, "auto_increment", "", "orders"},
		{"total", "numeric(10,2)", "NO", "", "0", "", "Order total", "orders"},
		{"placed_at", "timestamp(6) without time zone", "YES", "", "now()", "", "", "orders"},
		{"retention", "interval", "YES", "", nil, "", "", "orders"},
		{"tags", "text[]", "YES", "", nil, "", "", "orders"},
		{"email", "character varying(128)", "NO", "", nil, "", "", "users"},
	}}}
	src := &PostgresSource{q: q}

	cols, err := src.ListColumns(context.Background(), "public")
	require.NoError(t, err)
	require.Len(t, cols, 6)
	assert.Equal(t, postgresColumnsQuery, q.sql)
	assert.Equal(t, []any{"public"}, q.args)

	id := cols[0]
	assert.Equal(t, "bigint", id.Type)
	assert.Equal(t, schema.KeyPrimary, id.Key)
	assert.False(t, id.Nullable)
	assert.Nil(t, id.Default)
	assert.Equal(t, "auto_increment", id.Extra)

	total := cols[1]
	assert.Equal(t, "decimal(10,2)", total.Type)
	assert.Equal(t, "numeric(10,2)", total.SourceType)
	assert.Equal(t, schema.KeyNone, total.Key)
	require.NotNil(t, total.Default)
	assert.Equal(t, "0", *total.Default)
	assert.Equal(t, "Order total", total.Comment)

	placed := cols[2]
	assert.Equal(t, "timestamp(6)", placed.Type)
	assert.True(t, placed.Nullable)

	for _, col := range cols[3:5] {
		assert.Empty(t, col.Type, col.Name)
		_, err := generator.MapType(col.Type, generator.ModeEntity)
		assert.ErrorIs(t, err, generator.ErrUnsupportedType, col.Name)
	}
	assert.Equal(t, "interval", cols[3].DBType())
	assert.Equal(t, "text[]", cols[4].DBType())

	assert.Equal(t, "varchar(128)", cols[5].Type)
	assert.Equal(t, "users", cols[5].TableName)
	assert.True(t, q.rows.closed)
}

func TestPostgresUnmappableColumnFailsBuild(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"id", "integer", "NO", "PRI", nil, "", "", "jobs"},
		{"backoff", "interval", "NO", "", nil, "", "", "jobs"},
	}}}
	cols, err := (&PostgresSource{q: q}).ListColumns(context.Background(), "public")
	require.NoError(t, err)

	_, err = generator.Build(schema.Table{Name: "jobs"}, cols, naming.PrefixFixes(nil).Resolve("jobs"), generator.ModeEntity)
	var unsupported *generator.UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "jobs", unsupported.Table)
	assert.Equal(t, "backoff", unsupported.Column)
	assert.Equal(t, "interval", unsupported.SQLType)
}

func TestPostgresListErrors(t *testing.T) {
	boom := errors.New("conn closed")

	tests := []struct {
		name    string
		q       *fakeQuerier
		list    func(*PostgresSource) error
		wantMsg string
		wantErr error
	}{
		{
			name:    "tables query",
			q:       &fakeQuerier{err: boom},
			list:    listTables,
			wantMsg: "querying tables",
			wantErr: boom,
		},
		{
			name:    "tables iteration",
			q:       &fakeQuerier{rows: &fakeRows{err: boom}},
			list:    listTables,
			wantMsg: "iterating table rows",
			wantErr: boom,
		},
		{
			name:    "tables scan",
			q:       &fakeQuerier{rows: &fakeRows{rows: [][]any{{"orders"}}}},
			list:    listTables,
			wantMsg: "scanning table",
		},
		{
			name:    "columns query",
			q:       &fakeQuerier{err: boom},
			list:    listColumns,
			wantMsg: "querying columns",
			wantErr: boom,
		},
		{
			name:    "columns iteration",
			q:       &fakeQuerier{rows: &fakeRows{err: boom}},
			list:    listColumns,
			wantMsg: "iterating column rows",
			wantErr: boom,
		},
		{
			name:    "columns scan",
			q:       &fakeQuerier{rows: &fakeRows{rows: [][]any{{"id", "integer", "NO", "PRI", nil, "", nil, "orders"}}}},
			list:    listColumns,
			wantMsg: "scanning column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.list(&PostgresSource{q: tt.q})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadSnapshotPostgres(t *testing.T) {
	src := &PostgresSource{q: &sequenceQuerier{results: []*fakeRows{
		{rows: [][]any{{"users", "Accounts"}}},
		{rows: [][]any{{"id", "integer", "NO", "PRI", nil, "auto_increment", "", "users"}}},
	}}}

	snap, err := LoadSnapshot(context.Background(), src, "public")
	require.NoError(t, err)
	assert.Equal(t, "public", snap.Database)
	assert.Equal(t, []schema.Table{{Name: "users", Comment: "Accounts"}}, snap.Tables)
	require.Len(t, snap.ColumnsOf("users"), 1)
	assert.Equal(t, "integer", snap.ColumnsOf("users")[0].Type)
}

// sequenceQuerier answers successive queries with successive results.
type sequenceQuerier struct {
	results []*fakeRows
}

func (q *sequenceQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if len(q.results) == 0 {
		return nil, errors.New("unexpected query")
	}
	rows := q.results[0]
	q.results = q.results[1:]
	return rows, nil
}

func listTables(src *PostgresSource) error {
	_, err := src.ListTables(context.Background(), "public")
	return err
}

func listColumns(src *PostgresSource) error {
	_, err := src.ListColumns(context.Background(), "public")
	return err
}
