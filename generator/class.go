package generator

import (
	"errors"

	"github.com/ridoystarlord/entigen/naming"
	"github.com/ridoystarlord/entigen/schema"
)

// Field is one class member derived from a column.
type Field struct {
	Column  schema.Column
	Name    string
	Type    FieldType
	Primary bool
}

// Doc is the field's doc-comment text: the column comment, or the raw column
// type when the comment is empty.
func (f Field) Doc() string {
	if f.Column.Comment != "" {
		return f.Column.Comment
	}
	return f.Column.DBType()
}

// ColumnDefinition is the columnDefinition attribute of @Column: the raw
// type, then DEFAULT <value> unless the default is absent, "None" or "NULL",
// then the extra clause.
func (f Field) ColumnDefinition() string {
	def := f.Column.DBType()
	if d := f.Column.Default; d != nil && *d != "" && *d != "None" && *d != "NULL" {
		def += " DEFAULT " + *d
	}
	if f.Column.Extra != "" {
		def += " " + f.Column.Extra
	}
	return def
}

// Class is the model of one generated class.
type Class struct {
	Table         schema.Table
	Name          string
	PackageSuffix string
	Mode          Mode
	Fields        []Field
	// Composite is set when the class needs a <Name>PK companion.
	Composite bool
}

// KeyFields returns the primary-key fields in column order.
func (c *Class) KeyFields() []Field {
	var keys []Field
	for _, f := range c.Fields {
		if f.Primary {
			keys = append(keys, f)
		}
	}
	return keys
}

// Build maps the table's columns into a Class. Columns keep their order. The
// first column whose type cannot be mapped fails the build with an
// *UnsupportedTypeError.
func Build(table schema.Table, columns []schema.Column, name naming.Name, mode Mode) (*Class, error) {
	c := &Class{
		Table:         table,
		Name:          name.ClassName,
		PackageSuffix: name.PackageSuffix,
		Mode:          mode,
	}

	keys := 0
	for _, col := range columns {
		ft, err := MapType(col.Type, mode)
		if err != nil {
			if errors.Is(err, ErrUnsupportedType) {
				return nil, &UnsupportedTypeError{Table: table.Name, Column: col.Name, SQLType: col.DBType()}
			}
			return nil, err
		}
		if col.IsPrimary() {
			keys++
		}
		c.Fields = append(c.Fields, Field{
			Column:  col,
			Name:    naming.ToCamelCase(col.Name),
			Type:    ft,
			Primary: col.IsPrimary(),
		})
	}
	c.Composite = mode == ModeEntity && keys > 1

	return c, nil
}
