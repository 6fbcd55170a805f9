package formdata

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AppendYAML appends v encoded as an application/yaml part. Like
// [Writer.AppendJSON], nothing is written if encoding fails.
func (fw *Writer[W]) AppendYAML(name string, v any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if ind, ok := v.(Indented); ok {
		enc.SetIndent(len(ind.Indent()))
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: field %q: %w", ErrEncoding, name, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: field %q: %w", ErrEncoding, name, err)
	}
	return fw.Append(NewField(name).ContentType("application/yaml").Build(&buf))
}
