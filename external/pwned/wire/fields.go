package wire

import (
	"bytes"
	"encoding/json"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

var nullLiteral = json.RawMessage("null")

type scalarField[T any] struct {
	key string
	dst *Opt[T]
}

// Scalar binds key to a plain value. Numbers and booleans are read leniently
// because the service sends many of them as strings.
func Scalar[T any](key string, dst *Opt[T]) Field {
	return &scalarField[T]{key: key, dst: dst}
}

func (f *scalarField[T]) Key() string { return f.key }

func (f *scalarField[T]) decode(raw json.RawMessage) error {
	if kindOf(raw) == "null" {
		f.dst.SetNull()
		return nil
	}

	var v T
	if err := decodeScalar(raw, &v); err != nil {
		return &MappingError{Want: scalarName(&v), Got: kindOf(raw), Err: err}
	}
	f.dst.Set(v)
	return nil
}

func (f *scalarField[T]) encode() (json.RawMessage, bool, error) {
	switch f.dst.state {
	case unset:
		return nil, false, nil
	case null:
		return nullLiteral, true, nil
	}

	raw, err := sonic.Marshal(f.dst.value)
	if err != nil {
		return nil, false, crerr.Wrap(err, "encode scalar")
	}
	return raw, true, nil
}

type nestedField[T any, P Ptr[T]] struct {
	key string
	dst *Opt[P]
}

// Nested binds key to a single nested record.
func Nested[T any, P Ptr[T]](key string, dst *Opt[P]) Field {
	return &nestedField[T, P]{key: key, dst: dst}
}

func (f *nestedField[T, P]) Key() string { return f.key }

func (f *nestedField[T, P]) decode(raw json.RawMessage) error {
	switch kind := kindOf(raw); kind {
	case "null":
		f.dst.SetNull()
		return nil
	case "bool":
		if bytes.Equal(bytes.TrimSpace(raw), []byte("false")) {
			f.dst.SetNull()
			return nil
		}
		return &MappingError{Want: "object", Got: kind}
	case "array":
		if isEmptyArray(raw) {
			f.dst.SetNull()
			return nil
		}
		return &MappingError{Want: "object", Got: kind}
	case "object":
		rec := P(new(T))
		if err := decodeRecord(raw, rec); err != nil {
			return err
		}
		f.dst.Set(rec)
		return nil
	default:
		return &MappingError{Want: "object", Got: kind}
	}
}

func (f *nestedField[T, P]) encode() (json.RawMessage, bool, error) {
	switch f.dst.state {
	case unset:
		return nil, false, nil
	case null:
		return nullLiteral, true, nil
	}
	if f.dst.value == nil {
		return nullLiteral, true, nil
	}

	raw, err := Marshal(f.dst.value)
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

type nestedListField[T any, P Ptr[T]] struct {
	key string
	dst *Opt[[]P]
}

// NestedList binds key to an ordered list of nested records. A null entry
// reads back as a nil item.
func NestedList[T any, P Ptr[T]](key string, dst *Opt[[]P]) Field {
	return &nestedListField[T, P]{key: key, dst: dst}
}

func (f *nestedListField[T, P]) Key() string { return f.key }

func (f *nestedListField[T, P]) decode(raw json.RawMessage) error {
	switch kind := kindOf(raw); kind {
	case "null":
		f.dst.SetNull()
		return nil
	case "bool":
		if bytes.Equal(bytes.TrimSpace(raw), []byte("false")) {
			f.dst.SetNull()
			return nil
		}
		return &MappingError{Want: "list", Got: kind}
	case "object", "array":
		items, err := unmarshalList[T, P](raw, true)
		if err != nil {
			return err
		}
		f.dst.Set(items)
		return nil
	default:
		return &MappingError{Want: "list", Got: kind}
	}
}

func (f *nestedListField[T, P]) encode() (json.RawMessage, bool, error) {
	switch f.dst.state {
	case unset:
		return nil, false, nil
	case null:
		return nullLiteral, true, nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('[')
	for i, item := range f.dst.value {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		if item == nil {
			_, _ = buf.Write(nullLiteral)
			continue
		}
		raw, err := Marshal(item)
		if err != nil {
			return nil, false, withIndex(err, i)
		}
		_, _ = buf.Write(raw)
	}
	_ = buf.WriteByte(']')

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, true, nil
}

// kindOf names the JSON type of raw from its first significant byte.
func kindOf(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func isEmptyArray(raw []byte) bool {
	return isEmptyComposite(raw, '[', ']')
}

func isEmptyObject(raw []byte) bool {
	return isEmptyComposite(raw, '{', '}')
}

func isEmptyComposite(raw []byte, open, close byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) < 2 || trimmed[0] != open || trimmed[len(trimmed)-1] != close {
		return false
	}
	return len(bytes.TrimSpace(trimmed[1:len(trimmed)-1])) == 0
}
