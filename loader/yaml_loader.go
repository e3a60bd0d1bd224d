package loader

import (
	"fmt"
	"os"

	"github.com/ridoystarlord/entigen/schema"
	"gopkg.in/yaml.v3"
)

// LoadSnapshotFromYAML reads a schema snapshot previously written by
// WriteSnapshotYAML.
func LoadSnapshotFromYAML(filename string) (*schema.Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var snap schema.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	for i, c := range snap.Columns {
		if c.TableName == "" {
			return nil, fmt.Errorf("column #%d (%s) has no table", i+1, c.Name)
		}
	}

	return &snap, nil
}

// WriteSnapshotYAML writes snap to filename.
func WriteSnapshotYAML(filename string, snap *schema.Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshalling YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}
