package runner

import (
	"github.com/ridoystarlord/entigen/generator"
	"github.com/ridoystarlord/entigen/naming"
	"github.com/ridoystarlord/entigen/schema"
)

// Reporter receives one call per file written.
type Reporter interface {
	Generated(path string)
}

// Options configures a generation run.
type Options struct {
	OutputDir   string
	BasePackage string
	Mode        generator.Mode
	Prefixes    naming.PrefixFixes
	Reporter    Reporter
}

// Result lists what a run wrote and which tables it skipped.
type Result struct {
	Generated []string
	Skipped   []string
}

// Generate writes one class per eligible table of snap, in table order.
//
// Tables whose name ends with a digit are skipped. The first error stops the
// run and is returned as is; files already written stay on disk.
func Generate(snap *schema.Snapshot, opts Options) (*Result, error) {
	result := &Result{}

	for _, table := range snap.Tables {
		if naming.EndsWithDigit(table.Name) {
			result.Skipped = append(result.Skipped, table.Name)
			continue
		}

		class, err := generator.Build(table, snap.ColumnsOf(table.Name), opts.Prefixes.Resolve(table.Name), opts.Mode)
		if err != nil {
			return result, err
		}

		files, err := generator.Render(class, opts.BasePackage)
		if err != nil {
			return result, err
		}

		for _, f := range files {
			path, err := generator.WriteFile(opts.OutputDir, f)
			if err != nil {
				return result, err
			}
			result.Generated = append(result.Generated, path)
			if opts.Reporter != nil {
				opts.Reporter.Generated(path)
			}
		}
	}

	return result, nil
}

// TablePlan describes what Generate would do with one table.
type TablePlan struct {
	Table         string
	Skipped       bool
	ClassName     string
	PackageSuffix string
	Columns       int
	Composite     bool
}

// Plan resolves names and key shapes for every table without mapping types
// or touching the filesystem.
func Plan(snap *schema.Snapshot, prefixes naming.PrefixFixes, mode generator.Mode) []TablePlan {
	plans := make([]TablePlan, 0, len(snap.Tables))
	for _, table := range snap.Tables {
		if naming.EndsWithDigit(table.Name) {
			plans = append(plans, TablePlan{Table: table.Name, Skipped: true})
			continue
		}
		cols := snap.ColumnsOf(table.Name)
		name := prefixes.Resolve(table.Name)
		plans = append(plans, TablePlan{
			Table:         table.Name,
			ClassName:     name.ClassName,
			PackageSuffix: name.PackageSuffix,
			Columns:       len(cols),
			Composite:     mode == generator.ModeEntity && len(schema.PrimaryKeys(cols)) > 1,
		})
	}
	return plans
}
