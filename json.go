package formdata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AppendJSON appends v encoded as an application/json part. The value is
// encoded before anything is written, so an encoding failure leaves the
// body untouched.
func (fw *Writer[W]) AppendJSON(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if ind, ok := v.(Indented); ok {
		enc.SetIndent("", ind.Indent())
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: field %q: %w", ErrEncoding, name, err)
	}
	// Encode terminates with a newline; the part delimiter supplies its own.
	payload := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return fw.Append(NewField(name).ContentType("application/json").Build(bytes.NewReader(payload)))
}
