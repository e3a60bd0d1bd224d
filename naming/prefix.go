package naming

import "strings"

// PrefixFixes maps the lowercase first token of a table name to the token
// that should replace it. A nil map is valid and corrects nothing.
type PrefixFixes map[string]string

// Name is a table name resolved into its Java class and package parts.
type Name struct {
	Table         string
	Tokens        []string
	ClassName     string
	PackageSuffix string
}

// Resolve splits the lowercased table name on '_' and applies the prefix
// correction to the first token before deriving the class name and the
// package suffix. A name with a leading '_' has an empty first token and so
// an empty PackageSuffix; its class belongs to the base package.
func (f PrefixFixes) Resolve(table string) Name {
	tokens := strings.Split(strings.ToLower(table), "_")
	if fixed := f[tokens[0]]; fixed != "" {
		tokens[0] = fixed
	}
	return Name{
		Table:         table,
		Tokens:        tokens,
		ClassName:     ToPascalCase(tokens),
		PackageSuffix: tokens[0],
	}
}
