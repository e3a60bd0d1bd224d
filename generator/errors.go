package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for the generation failure kinds.
var (
	// ErrUnsupportedType indicates a column type no mapping rule accepts.
	ErrUnsupportedType = errors.New("entigen: unsupported data type")
	// ErrWrite indicates an output directory or file could not be written.
	ErrWrite = errors.New("entigen: write failed")
)

// UnsupportedTypeError names the column whose type could not be mapped.
type UnsupportedTypeError struct {
	Table   string
	Column  string
	SQLType string
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: %s.%s %s", ErrUnsupportedType, e.Table, e.Column, e.SQLType)
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// WriteError wraps a filesystem failure with the path being written.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrWrite, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrWrite.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// IsUnsupportedType reports whether err is or wraps an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	var e *UnsupportedTypeError
	return errors.As(err, &e)
}
