package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// manifest is the YAML file accepted by --manifest.
type manifest struct {
	Boundary string      `yaml:"boundary"`
	Fields   []fieldSpec `yaml:"fields"`
}

// loadManifest reads a manifest. Relative file paths resolve against the
// manifest's directory.
func loadManifest(path string) (*manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	var m manifest
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range m.Fields {
		if err := m.Fields[i].validate(); err != nil {
			return nil, fmt.Errorf("manifest field %d: %w", i, err)
		}
		if file := m.Fields[i].File; file != "" && !filepath.IsAbs(file) {
			m.Fields[i].File = filepath.Join(dir, file)
		}
	}
	return &m, nil
}
