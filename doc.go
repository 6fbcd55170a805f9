// Package formdata writes multipart/form-data bodies as a stream.
//
// A [Writer] wraps any [io.Writer] and emits one part per append call. Part
// payloads are copied straight to the sink, so large files never sit in
// memory. [Writer.End] writes the closing delimiter and hands the sink back
// with its concrete type:
//
//	fw, err := formdata.New(&buf)
//	if err != nil { ... }
//	_ = fw.AppendText("greeting", "hello")
//	_ = fw.AppendFile("photo", "image/png", file)
//	body, err := fw.End()
//	req.Header.Set("Content-Type", fw.ContentType())
//
// # Fields
//
// A [Field] is built with [NewField] or the [TextField] and [FileField]
// helpers:
//
//	f := formdata.NewField("avatar").Filename("me.png").ContentType("image/png").Build(file)
//
// Field and file names are escaped inside their quoted parameters: `"`
// becomes `\"`, `\` becomes `\\` and CR becomes `\` CR. LF is passed through
// unchanged. Content types are written verbatim.
//
// # Boundaries
//
// [New] picks a boundary with [GenerateBoundary]: 26 dashes followed by
// unpadded hex from 12 random bytes. [NewWithBoundary] takes any boundary;
// use [ValidateBoundary] when it comes from user input. The writer never
// scans payloads for the boundary.
//
// # Encoded parts
//
// [Writer.AppendJSON] and [Writer.AppendYAML] encode a value into a part,
// honouring [Indented]. [Writer.AppendPairs] appends plain [KeyValue] fields.
// [Writer.AppendIter] and [Writer.AppendChan] append fields from an iterator
// or channel as they arrive.
//
// # Errors
//
// Write and read errors from the sink or a payload are returned unchanged.
// Nothing is rolled back; a writer that returned an error should be
// discarded. The package exports sentinel errors for its own failures:
//
//   - [ErrInvalidBoundary] — boundary rejected by [ValidateBoundary]
//   - [ErrRandomSource] — random source failed while generating a boundary
//   - [ErrEncoding] — JSON or YAML encoding failed
package formdata
