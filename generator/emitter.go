package generator

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/ridoystarlord/entigen/schema"
)

// Ext is the extension of every generated file.
const Ext = ".java"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("java").ParseFS(templateFS, "templates/*.tmpl"))

// File is one rendered source file. Path is relative to the output root.
type File struct {
	Path    string
	Content []byte
}

type templateData struct {
	Package   string
	Name      string
	Table     schema.Table
	Entity    bool
	Composite bool
	Fields    []Field
	Keys      []Field
}

// Render produces the class file and, for composite keys, its PK companion.
// The package is basePackage joined with the class's package suffix; an empty
// suffix places the class in basePackage itself, at the output root.
func Render(c *Class, basePackage string) ([]File, error) {
	pkg := joinPackage(basePackage, c.PackageSuffix)
	data := templateData{
		Package:   pkg,
		Name:      c.Name,
		Table:     c.Table,
		Entity:    c.Mode == ModeEntity,
		Composite: c.Composite,
		Fields:    c.Fields,
		Keys:      c.KeyFields(),
	}

	src, err := execute("class.java.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", c.Name, err)
	}
	files := []File{{
		Path:    filepath.Join(c.PackageSuffix, c.Name+Ext),
		Content: src,
	}}

	if c.Composite {
		key, err := execute("key.java.tmpl", data)
		if err != nil {
			return nil, fmt.Errorf("rendering %sPK: %w", c.Name, err)
		}
		files = append(files, File{
			Path:    filepath.Join(c.PackageSuffix, c.Name+"PK"+Ext),
			Content: key,
		})
	}

	return files, nil
}

func execute(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinPackage(base, suffix string) string {
	switch {
	case base == "":
		return suffix
	case suffix == "":
		return base
	}
	return base + "." + suffix
}
