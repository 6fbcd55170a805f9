package formdata

import "strings"

// quoteEscaper rewrites the bytes that would end or corrupt a quoted
// Content-Disposition parameter. LF passes through unchanged.
var quoteEscaper = strings.NewReplacer(`"`, `\"`, `\`, `\\`, "\r", "\\\r")

func escapeQuoted(s string) string {
	return quoteEscaper.Replace(s)
}
