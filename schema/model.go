package schema

// Table is one base table as reported by the metadata source.
type Table struct {
	Name    string `yaml:"name"`
	Comment string `yaml:"comment,omitempty"`
}

// KeyRole is the column's participation in the table key.
type KeyRole string

const (
	KeyNone    KeyRole = ""
	KeyPrimary KeyRole = "PRI"
)

// Column is one column as reported by the metadata source. TableName refers
// back to the owning Table by name.
//
// Type is in the MySQL type vocabulary the type mapper matches on. Sources for
// other databases translate into it and keep the native spelling in
// SourceType; a native type with no MySQL counterpart leaves Type empty.
type Column struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	SourceType string  `yaml:"source_type,omitempty"`
	Nullable   bool    `yaml:"nullable"`
	Key        KeyRole `yaml:"key,omitempty"`
	Default    *string `yaml:"default,omitempty"`
	Extra      string  `yaml:"extra,omitempty"`
	Comment    string  `yaml:"comment,omitempty"`
	TableName  string  `yaml:"table"`
}

// DBType is the column type as the database spells it.
func (c Column) DBType() string {
	if c.SourceType != "" {
		return c.SourceType
	}
	return c.Type
}

// IsPrimary reports whether the column is part of the primary key.
func (c Column) IsPrimary() bool {
	return c.Key == KeyPrimary
}

// ParseKeyRole maps an information_schema COLUMN_KEY value to a KeyRole.
// Only "PRI" is significant; UNI/MUL and friends are treated as no role.
func ParseKeyRole(s string) KeyRole {
	if s == string(KeyPrimary) {
		return KeyPrimary
	}
	return KeyNone
}

// ParseNullable maps an information_schema IS_NULLABLE value.
func ParseNullable(s string) bool {
	return s == "YES"
}
