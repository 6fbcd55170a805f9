package formdata

import (
	"io"
	"strings"
)

// Field describes a single part of a form body.
//
// A Field owns its payload. [Writer.Append] reads Data to EOF and closes it
// when it implements [io.Closer], so a Field must not be appended twice.
type Field struct {
	name        string
	filename    string
	hasFilename bool
	contentType string
	hasType     bool
	data        io.Reader
}

// Name returns the form field name.
func (f Field) Name() string { return f.name }

// Filename returns the suggested file name and whether one was set.
// An empty file name that was set explicitly is still emitted.
func (f Field) Filename() (string, bool) { return f.filename, f.hasFilename }

// ContentType returns the part media type and whether one was set.
func (f Field) ContentType() (string, bool) { return f.contentType, f.hasType }

// Data returns the payload reader. It may be nil, which is an empty payload.
func (f Field) Data() io.Reader { return f.data }

// FieldBuilder assembles a [Field].
//
//	f := formdata.NewField("avatar").
//		Filename("me.png").
//		ContentType("image/png").
//		Build(file)
type FieldBuilder struct {
	field Field
}

// NewField starts a field with the given name.
func NewField(name string) *FieldBuilder {
	return &FieldBuilder{field: Field{name: name}}
}

// Filename sets the suggested file name.
func (b *FieldBuilder) Filename(filename string) *FieldBuilder {
	b.field.filename = filename
	b.field.hasFilename = true
	return b
}

// ContentType sets the part media type. The value is written verbatim.
func (b *FieldBuilder) ContentType(contentType string) *FieldBuilder {
	b.field.contentType = contentType
	b.field.hasType = true
	return b
}

// Build finishes the field with data as its payload.
func (b *FieldBuilder) Build(data io.Reader) Field {
	f := b.field
	f.data = data
	return f
}

// TextField returns a field with only a name and a text payload.
func TextField(name, value string) Field {
	return NewField(name).Build(strings.NewReader(value))
}

// FileField returns a file upload field.
func FileField(name, filename, contentType string, data io.Reader) Field {
	return NewField(name).Filename(filename).ContentType(contentType).Build(data)
}
