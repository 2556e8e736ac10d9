package stream

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewDecoder returns a reader yielding the UTF-8 content of r with a leading
// byte order mark removed. Reads fail with encoding.ErrInvalidUTF8 at the
// first byte that is not valid UTF-8.
func NewDecoder(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(
		encoding.UTF8Validator,
		unicode.UTF8BOM.NewDecoder(),
	))
}
