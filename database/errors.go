package database

import (
	"errors"
	"fmt"
)

// ErrConnection indicates the metadata source could not be reached or
// refused the credentials.
var ErrConnection = errors.New("entigen: database connection failed")

// ConnectionError carries the driver and address of a failed connection.
type ConnectionError struct {
	Driver string
	Addr   string
	Err    error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("error connecting to %s at %s: %v", e.Driver, e.Addr, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConnection.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}
