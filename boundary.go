package formdata

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	boundaryDashes    = 26
	boundaryRandBytes = 12
	maxBoundaryLen    = 70
)

// GenerateBoundary returns a random boundary built from crypto/rand.
//
// The result is 26 dashes followed by the lowercase hex rendering of three
// random uint32 values. The values are not zero padded, so the hex tail is
// between 3 and 24 characters long.
func GenerateBoundary() (string, error) {
	return GenerateBoundaryFrom(rand.Reader)
}

// GenerateBoundaryFrom is like [GenerateBoundary] but reads its 12 random
// bytes from r.
func GenerateBoundaryFrom(r io.Reader) (string, error) {
	var buf [boundaryRandBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	var b strings.Builder
	b.Grow(boundaryDashes + 2*boundaryRandBytes)
	b.WriteString(strings.Repeat("-", boundaryDashes))
	for i := 0; i < boundaryRandBytes; i += 4 {
		b.WriteString(strconv.FormatUint(uint64(binary.LittleEndian.Uint32(buf[i:i+4])), 16))
	}
	return b.String(), nil
}

// ValidateBoundary reports whether boundary is usable as a multipart
// boundary parameter: 1 to 70 characters from the RFC 2046 bchars set,
// not ending in a space. The [Writer] never validates its boundary; this is
// for callers that accept boundaries from users.
func ValidateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > maxBoundaryLen {
		return fmt.Errorf("%w: length %d not in [1, %d]", ErrInvalidBoundary, len(boundary), maxBoundaryLen)
	}
	for i := 0; i < len(boundary); i++ {
		if !isBoundaryChar(boundary[i]) {
			return fmt.Errorf("%w: invalid character %q at offset %d", ErrInvalidBoundary, boundary[i], i)
		}
	}
	if boundary[len(boundary)-1] == ' ' {
		return fmt.Errorf("%w: trailing space", ErrInvalidBoundary)
	}
	return nil
}

// rfc2046#section-5.1.1
func isBoundaryChar(c byte) bool {
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?', ' ':
		return true
	}
	return false
}
