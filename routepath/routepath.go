// Package routepath implements the segment-level path handling of the
// navigation router: percent-decoding, splitting, and canonical
// re-encoding.
package routepath

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// ErrInvalidEscape reports a segment carrying a malformed percent escape.
var ErrInvalidEscape = errors.New("routepath: invalid percent escape")

// Split breaks a '/'-delimited path into its percent-decoded segments.
// Leading and trailing slashes are stripped, and empty segments produced
// by repeated slashes are discarded, so "/a//b/" splits the same as
// "/a/b". Splitting happens before decoding: an encoded slash stays
// inside its segment.
func Split(path string) ([]string, error) {
	segs := make([]string, 0, strings.Count(path, "/")+1)

	for _, raw := range strings.Split(path, "/") {
		if raw == "" {
			continue
		}

		seg, err := url.PathUnescape(raw)
		if err != nil {
			return nil, fmt.Errorf("%w in segment %q", ErrInvalidEscape, raw)
		}

		segs = append(segs, seg)
	}

	return segs, nil
}

// Join re-encodes segments into the canonical '/'-delimited form. The
// empty sequence is the root path "/".
func Join(segs []string) string {
	if len(segs) == 0 {
		return "/"
	}

	buf := bytebufferpool.Get()

	for _, seg := range segs {
		buf.WriteByte('/')
		buf.WriteString(url.PathEscape(seg))
	}

	path := buf.String()
	bytebufferpool.Put(buf)

	return path
}

// Canonical decodes, splits and re-encodes path.
func Canonical(path string) (string, error) {
	segs, err := Split(path)
	if err != nil {
		return "", err
	}

	return Join(segs), nil
}
