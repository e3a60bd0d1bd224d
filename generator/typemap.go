package generator

import (
	"fmt"
	"strings"
)

// Mode selects between persistence entities and plain data carriers.
type Mode int

const (
	ModeEntity Mode = iota
	ModeDTO
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeEntity:
		return "entity"
	case ModeDTO:
		return "dto"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "entity" or "dto", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entity", "":
		return ModeEntity, nil
	case "dto":
		return ModeDTO, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want entity or dto)", s)
	}
}

// FieldType is a Java field type.
type FieldType string

const (
	TypeLong          FieldType = "Long"
	TypeBoolean       FieldType = "Boolean"
	TypeInteger       FieldType = "Integer"
	TypeDouble        FieldType = "Double"
	TypeBigDecimal    FieldType = "java.math.BigDecimal"
	TypeLocalDateTime FieldType = "java.time.LocalDateTime"
	TypeLocalDate     FieldType = "java.time.LocalDate"
	TypeString        FieldType = "String"
)

// MapType maps a raw column type such as "decimal(10,2)" to a field type.
//
// Rules match by substring on the lowercased type and the first match wins,
// so "bigint" and "tinyint" must be tested before "int". A zero-scale
// decimal becomes Long in DTO mode only. The returned error wraps
// ErrUnsupportedType; callers add the table and column.
func MapType(sqlType string, mode Mode) (FieldType, error) {
	t := strings.ToLower(sqlType)
	switch {
	case strings.Contains(t, "bigint"):
		return TypeLong, nil
	case strings.Contains(t, "tinyint"):
		return TypeBoolean, nil
	case strings.Contains(t, "int"), strings.Contains(t, "mediumint"):
		return TypeInteger, nil
	case strings.Contains(t, "double"), strings.Contains(t, "float"):
		return TypeDouble, nil
	case strings.Contains(t, "decimal"):
		if mode == ModeDTO && strings.HasSuffix(t, ",0)") {
			return TypeLong, nil
		}
		return TypeBigDecimal, nil
	case strings.Contains(t, "timestamp"), strings.Contains(t, "datetime"):
		return TypeLocalDateTime, nil
	case strings.Contains(t, "date"):
		return TypeLocalDate, nil
	case containsAny(t, "varchar", "text", "char", "mediumtext", "longtext"):
		return TypeString, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, sqlType)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
