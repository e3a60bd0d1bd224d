package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ridoystarlord/entigen/utils"
)

// MySQLDSN builds the go-sql-driver DSN for s. Only metadata is read, so the
// connection targets information_schema regardless of s.Database.
func MySQLDSN(s *utils.Settings) string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = s.Addr()
	cfg.User = s.Username
	cfg.Passwd = s.Password
	cfg.DBName = "information_schema"
	return cfg.FormatDSN()
}

// PostgresURL builds the pgx connection string for s.
func PostgresURL(s *utils.Settings) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.Username, s.Password),
		Host:   s.Host + ":" + strconv.Itoa(s.Port),
		Path:   "/" + s.Database,
	}
	return u.String()
}

// OpenMySQL opens and pings a MariaDB/MySQL connection.
func OpenMySQL(ctx context.Context, s *utils.Settings) (*sql.DB, error) {
	db, err := sql.Open("mysql", MySQLDSN(s))
	if err != nil {
		return nil, &ConnectionError{Driver: utils.DriverMySQL, Addr: s.Addr(), Err: err}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &ConnectionError{Driver: utils.DriverMySQL, Addr: s.Addr(), Err: fmt.Errorf("unable to ping database: %w", err)}
	}

	return db, nil
}

// OpenPostgres opens and pings a PostgreSQL connection pool.
func OpenPostgres(ctx context.Context, s *utils.Settings) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, PostgresURL(s))
	if err != nil {
		return nil, &ConnectionError{Driver: utils.DriverPostgres, Addr: s.Addr(), Err: fmt.Errorf("unable to create connection pool: %w", err)}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &ConnectionError{Driver: utils.DriverPostgres, Addr: s.Addr(), Err: fmt.Errorf("unable to ping database: %w", err)}
	}

	return pool, nil
}
