package validator

import (
	"fmt"

	"github.com/ridoystarlord/entigen/generator"
	"github.com/ridoystarlord/entigen/naming"
	"github.com/ridoystarlord/entigen/schema"
)

// ValidationError represents a validation finding with details
type ValidationError struct {
	Table    string `json:"table"`
	Column   string `json:"column,omitempty"`
	SQLType  string `json:"sql_type,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning", "info"
}

// ValidationResult contains all validation results
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Tables   int               `json:"tables"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
	Info     []ValidationError `json:"info"`
}

// ValidateSnapshot checks every eligible table of snap the way a generation
// run would, but collects all unsupported column types instead of stopping
// at the first one.
func ValidateSnapshot(snap *schema.Snapshot, mode generator.Mode) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
		Info:     []ValidationError{},
	}

	for _, table := range snap.Tables {
		if naming.EndsWithDigit(table.Name) {
			result.Info = append(result.Info, ValidationError{
				Table:    table.Name,
				Message:  "table name ends with a digit and is skipped",
				Severity: "info",
			})
			continue
		}
		result.Tables++
		validateTable(table, snap.ColumnsOf(table.Name), mode, result)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func validateTable(table schema.Table, columns []schema.Column, mode generator.Mode, result *ValidationResult) {
	if len(columns) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Table:    table.Name,
			Message:  "table has no columns",
			Severity: "warning",
		})
		return
	}

	for _, col := range columns {
		if _, err := generator.MapType(col.Type, mode); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Table:    table.Name,
				Column:   col.Name,
				SQLType:  col.DBType(),
				Message:  fmt.Sprintf("no field type for %q", col.DBType()),
				Severity: "error",
			})
		}
	}

	keys := schema.PrimaryKeys(columns)
	if mode == generator.ModeEntity {
		switch {
		case len(keys) == 0:
			result.Warnings = append(result.Warnings, ValidationError{
				Table:    table.Name,
				Message:  "entity has no primary key column and gets no @Id",
				Severity: "warning",
			})
		case len(keys) > 1:
			result.Info = append(result.Info, ValidationError{
				Table:    table.Name,
				Message:  fmt.Sprintf("composite key of %d columns, a PK class is generated", len(keys)),
				Severity: "info",
			})
		}
	}
}
