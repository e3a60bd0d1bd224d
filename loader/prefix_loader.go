package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ridoystarlord/entigen/naming"
	"gopkg.in/yaml.v3"
)

// LoadPrefixFixes reads the table-name prefix corrections from filename.
// The file is a flat JSON or YAML mapping such as {"usr": "user"}. A missing
// file, or an empty filename, yields an empty mapping.
func LoadPrefixFixes(filename string) (naming.PrefixFixes, error) {
	if filename == "" {
		return naming.PrefixFixes{}, nil
	}

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return naming.PrefixFixes{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading prefix file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing prefix file %s: %w", filename, err)
	}

	fixes := make(naming.PrefixFixes, len(raw))
	for k, v := range raw {
		fixes[strings.ToLower(k)] = v
	}
	return fixes, nil
}
