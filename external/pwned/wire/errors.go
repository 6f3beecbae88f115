package wire

import (
	"fmt"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// MappingError reports a wire value whose shape does not match the binding
// declared for its key.
type MappingError struct {
	Path string
	Want string
	Got  string
	Err  error
}

func (e *MappingError) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}
	msg := fmt.Sprintf("wire mapping %s: want %s, got %s", path, e.Want, e.Got)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

func withPath(err error, key string) error {
	var mapping *MappingError
	if !crerr.As(err, &mapping) {
		return crerr.Wrapf(err, "wire key %q", key)
	}
	mapping.Path = joinPath(key, mapping.Path)
	return mapping
}

func withIndex(err error, index int) error {
	var mapping *MappingError
	if !crerr.As(err, &mapping) {
		return crerr.Wrapf(err, "wire index %d", index)
	}
	mapping.Path = joinPath("["+strconv.Itoa(index)+"]", mapping.Path)
	return mapping
}

func joinPath(head, tail string) string {
	switch {
	case tail == "":
		return head
	case strings.HasPrefix(tail, "["):
		return head + tail
	default:
		return head + "." + tail
	}
}
