package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/formdata"
)

const defaultFileType = "application/octet-stream"

var errInvalidField = errors.New("invalid field")

// fieldSpec is one field as given on the command line or in a manifest.
// A spec without File is a text field, possibly empty.
type fieldSpec struct {
	Name        string `yaml:"name"`
	Value       string `yaml:"value"`
	File        string `yaml:"file"`
	Filename    string `yaml:"filename"`
	ContentType string `yaml:"content_type"`
}

func (s fieldSpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", errInvalidField)
	}
	if s.File != "" && s.Value != "" {
		return fmt.Errorf("%w: field %q sets both value and file", errInvalidField, s.Name)
	}
	if s.File == "" && s.Filename != "" {
		return fmt.Errorf("%w: field %q sets filename without file", errInvalidField, s.Name)
	}
	return nil
}

// field opens the payload. File payloads are closed by the writer.
func (s fieldSpec) field() (formdata.Field, error) {
	b := formdata.NewField(s.Name)
	if s.File == "" {
		if s.ContentType != "" {
			b.ContentType(s.ContentType)
		}
		return b.Build(strings.NewReader(s.Value)), nil
	}

	f, err := os.Open(s.File)
	if err != nil {
		return formdata.Field{}, fmt.Errorf("failed to open file for field %q: %w", s.Name, err)
	}
	filename := s.Filename
	if filename == "" {
		filename = filepath.Base(s.File)
	}
	contentType := s.ContentType
	if contentType == "" {
		contentType = defaultFileType
	}
	return b.Filename(filename).ContentType(contentType).Build(f), nil
}

// parseFormSpec parses curl style form arguments:
//
//	name=value
//	name=@path[;type=mime[;param=value]...][;filename=name]
func parseFormSpec(arg string) (fieldSpec, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return fieldSpec{}, fmt.Errorf("%w: %q: expected name=value", errInvalidField, arg)
	}
	spec := fieldSpec{Name: name}
	if path, isFile := strings.CutPrefix(value, "@"); isFile {
		params := strings.Split(path, ";")
		spec.File = params[0]
		if spec.File == "" {
			return fieldSpec{}, fmt.Errorf("%w: %q: empty file path", errInvalidField, arg)
		}
		inType := false
		for _, p := range params[1:] {
			k, v, _ := strings.Cut(p, "=")
			switch {
			case k == "type":
				spec.ContentType = v
				inType = true
			case k == "filename":
				spec.Filename = v
				inType = false
			case inType:
				// Media type parameters such as charset stay with the type.
				spec.ContentType += ";" + p
			default:
				return fieldSpec{}, fmt.Errorf("%w: %q: unknown parameter %q", errInvalidField, arg, k)
			}
		}
	} else {
		spec.Value = value
	}
	if err := spec.validate(); err != nil {
		return fieldSpec{}, err
	}
	return spec, nil
}
