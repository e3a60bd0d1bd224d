package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Settings is the connection and package configuration of a run.
type Settings struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	Schema      string
	BasePackage string
}

// LoadEnv loads variables from the given .env files, or ./.env when none
// are given. Variables already set in the environment win.
func LoadEnv(files ...string) {
	err := godotenv.Load(files...)
	if err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}

// LoadSettings reads Settings from the environment. Missing values are left
// empty; call Validate before connecting.
func LoadSettings() (*Settings, error) {
	s := &Settings{
		Driver:      strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))),
		Host:        os.Getenv("DB_SERVER"),
		Username:    os.Getenv("DB_USERNAME"),
		Password:    os.Getenv("DB_PASSWORD"),
		Database:    os.Getenv("DB_DATABASE"),
		Schema:      os.Getenv("DB_SCHEMA"),
		BasePackage: os.Getenv("BASE_PACKAGE"),
	}

	switch s.Driver {
	case "", DriverMySQL, "mariadb":
		s.Driver = DriverMySQL
	case DriverPostgres, "postgresql", "pgx":
		s.Driver = DriverPostgres
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want mysql or postgres)", s.Driver)
	}

	if p := os.Getenv("DB_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid DB_PORT %q", p)
		}
		s.Port = port
	} else if s.Driver == DriverPostgres {
		s.Port = 5432
	} else {
		s.Port = 3306
	}

	if s.Schema == "" {
		if s.Driver == DriverPostgres {
			s.Schema = "public"
		} else {
			s.Schema = s.Database
		}
	}

	return s, nil
}

// Validate reports every missing connection variable at once.
func (s *Settings) Validate() error {
	var missing []string
	if s.Host == "" {
		missing = append(missing, "DB_SERVER")
	}
	if s.Username == "" {
		missing = append(missing, "DB_USERNAME")
	}
	if s.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if s.Database == "" {
		missing = append(missing, "DB_DATABASE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s not set (in .env or environment)", strings.Join(missing, ", "))
	}
	return nil
}

// Addr is host:port of the database server.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
