package formdata

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidBoundary = errors.New("invalid boundary")
	ErrRandomSource    = errors.New("random source failed")
	ErrEncoding        = errors.New("encoding failed")
)

const (
	crlf              = "\r\n"
	mediaType         = "multipart/form-data"
	contentTypePrefix = mediaType + "; boundary="
)

// Writer writes a multipart/form-data body to a sink of type W.
//
// The writer owns the sink until [Writer.End] hands it back. It is not safe
// for concurrent use. After any error the body is truncated and the writer
// should be discarded.
type Writer[W io.Writer] struct {
	w        W
	boundary string
}

// New returns a Writer with a boundary from [GenerateBoundary].
func New[W io.Writer](w W) (*Writer[W], error) {
	boundary, err := GenerateBoundary()
	if err != nil {
		return nil, err
	}
	return NewWithBoundary(w, boundary), nil
}

// NewWithBoundary returns a Writer using boundary as is. Nothing is written
// until the first append. The boundary is not validated and payloads are
// not scanned for it; see [ValidateBoundary].
func NewWithBoundary[W io.Writer](w W, boundary string) *Writer[W] {
	return &Writer[W]{w: w, boundary: boundary}
}

// Boundary returns the boundary string.
func (fw *Writer[W]) Boundary() string { return fw.boundary }

// ContentType returns the value for the request's Content-Type header.
// The boundary is not quoted.
func (fw *Writer[W]) ContentType() string {
	return contentTypePrefix + fw.boundary
}

// Append writes one part for f.
//
// The payload is copied to the sink until EOF and then closed if it
// implements [io.Closer]. The file name and field name are escaped; the
// content type is written unchecked, so a value containing CR or LF yields
// a malformed body.
func (fw *Writer[W]) Append(f Field) (err error) {
	if c, ok := f.data.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}()
	}
	if _, err := io.WriteString(fw.w, fw.partHeader(f)); err != nil {
		return err
	}
	if f.data != nil {
		if _, err := io.Copy(fw.w, f.data); err != nil {
			return err
		}
	}
	_, err = io.WriteString(fw.w, crlf)
	return err
}

func (fw *Writer[W]) partHeader(f Field) string {
	var b strings.Builder
	b.WriteString("--")
	b.WriteString(fw.boundary)
	b.WriteString(crlf)
	b.WriteString(`Content-Disposition: form-data; name="`)
	b.WriteString(escapeQuoted(f.name))
	b.WriteByte('"')
	if f.hasFilename {
		b.WriteString(`; filename="`)
		b.WriteString(escapeQuoted(f.filename))
		b.WriteByte('"')
	}
	if f.hasType {
		b.WriteString(crlf)
		b.WriteString("Content-Type: ")
		b.WriteString(f.contentType)
	}
	b.WriteString(crlf)
	b.WriteString(crlf)
	return b.String()
}

// AppendText appends a plain field holding data.
func (fw *Writer[W]) AppendText(name, data string) error {
	return fw.Append(TextField(name, data))
}

// AppendBytes appends a plain field holding data.
func (fw *Writer[W]) AppendBytes(name string, data []byte) error {
	return fw.Append(NewField(name).Build(bytes.NewReader(data)))
}

// AppendFile appends a file field whose file name is name.
// Use [Writer.AppendFileNamed] for a distinct file name.
func (fw *Writer[W]) AppendFile(name, mime string, data io.Reader) error {
	return fw.Append(FileField(name, name, mime, data))
}

// AppendFileNamed appends a file field with an explicit file name.
func (fw *Writer[W]) AppendFileNamed(name, filename, mime string, data io.Reader) error {
	return fw.Append(FileField(name, filename, mime, data))
}

// End writes the closing delimiter and returns the sink.
// The writer must not be used afterwards.
func (fw *Writer[W]) End() (W, error) {
	_, err := io.WriteString(fw.w, "--"+fw.boundary+"--"+crlf)
	return fw.w, err
}
