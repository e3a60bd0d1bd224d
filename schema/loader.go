package schema

// Snapshot is everything one generation run reads from the metadata source:
// tables ordered by name and columns ordered by table name then ordinal
// position.
type Snapshot struct {
	Database string   `yaml:"database,omitempty"`
	Tables   []Table  `yaml:"tables"`
	Columns  []Column `yaml:"columns"`
}

// ColumnsOf returns the columns belonging to table, keeping their order.
func (s *Snapshot) ColumnsOf(table string) []Column {
	var cols []Column
	for _, c := range s.Columns {
		if c.TableName == table {
			cols = append(cols, c)
		}
	}
	return cols
}

// PrimaryKeys returns the primary-key columns among cols, keeping their order.
func PrimaryKeys(cols []Column) []Column {
	var keys []Column
	for _, c := range cols {
		if c.IsPrimary() {
			keys = append(keys, c)
		}
	}
	return keys
}
