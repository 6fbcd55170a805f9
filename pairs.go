package formdata

// KeyValue is a single text field.
type KeyValue struct {
	Key   string
	Value string
}

// Indented controls indentation of [Writer.AppendJSON] and
// [Writer.AppendYAML] payloads. Without it, JSON is compact and YAML uses
// its default indent.
type Indented interface {
	Indent() string
}

// AppendPairs appends one text field per pair, in order.
func (fw *Writer[W]) AppendPairs(kvs ...KeyValue) error {
	for _, kv := range kvs {
		if err := fw.AppendText(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}
