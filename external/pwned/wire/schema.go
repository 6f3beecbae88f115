// Package wire maps between the service's camelCase JSON objects and typed
// records. Every record declares its own Schema: an ordered table of bindings
// from a wire key to one of its fields. Decoding walks the table over an
// incoming object; encoding walks it over the record and omits unset fields.
package wire

import (
	"encoding/json"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// Field binds one wire key to one record field.
type Field interface {
	Key() string
	decode(raw json.RawMessage) error
	encode() (json.RawMessage, bool, error)
}

type Schema []Field

// Record is implemented by every type the mapper can convert.
type Record interface {
	Schema() Schema
}

// Ptr constrains a type parameter to a pointer to a record, so nested
// bindings can allocate fresh values while decoding.
type Ptr[T any] interface {
	*T
	Record
}

// Merge layers overlay on top of base. A binding whose key already exists in
// base replaces it in place; new keys are appended.
func Merge(base Schema, overlay ...Field) Schema {
	out := make(Schema, 0, len(base)+len(overlay))
	out = append(out, base...)
	for _, field := range overlay {
		if i := out.index(field.Key()); i >= 0 {
			out[i] = field
			continue
		}
		out = append(out, field)
	}
	return out
}

// Schema lets a bare table act as a Record, for keys read outside a type's
// own schema.
func (s Schema) Schema() Schema {
	return s
}

func (s Schema) index(key string) int {
	for i, field := range s {
		if field.Key() == key {
			return i
		}
	}
	return -1
}

func (s Schema) Keys() []string {
	out := make([]string, 0, len(s))
	for _, field := range s {
		out = append(out, field.Key())
	}
	return out
}

// DecodeObject fills rec from obj. Keys rec does not declare are ignored and
// declared keys absent from obj leave their fields untouched.
func DecodeObject(obj *Object, rec Record) error {
	for _, field := range rec.Schema() {
		raw, ok := obj.Get(field.Key())
		if !ok {
			continue
		}
		if err := field.decode(raw); err != nil {
			return withPath(err, field.Key())
		}
	}
	return nil
}

// Encode builds the wire object for rec from every field that is set.
func Encode(rec Record) (*Object, error) {
	obj := NewObject()
	for _, field := range rec.Schema() {
		raw, ok, err := field.encode()
		if err != nil {
			return nil, withPath(err, field.Key())
		}
		if !ok {
			continue
		}
		obj.Set(field.Key(), raw)
	}
	return obj, nil
}

func Marshal(rec Record) ([]byte, error) {
	obj, err := Encode(rec)
	if err != nil {
		return nil, err
	}
	return obj.MarshalJSON()
}

func Unmarshal(data []byte, rec Record) error {
	obj, err := ParseObject(data)
	if err != nil {
		return err
	}
	return DecodeObject(obj, rec)
}

// UnmarshalNew decodes data into a freshly allocated record.
func UnmarshalNew[T any, P Ptr[T]](data []byte) (P, error) {
	rec := P(new(T))
	if err := decodeRecord(data, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UnmarshalList decodes a JSON array of objects, keeping the server's order.
// A null or an empty object decodes as an empty list.
func UnmarshalList[T any, P Ptr[T]](data []byte) ([]P, error) {
	return unmarshalList[T, P](data, false)
}

func unmarshalList[T any, P Ptr[T]](data []byte, keepNull bool) ([]P, error) {
	switch kindOf(data) {
	case "null", "empty":
		return []P{}, nil
	case "object":
		if isEmptyObject(data) {
			return []P{}, nil
		}
		return nil, &MappingError{Want: "list", Got: "object"}
	case "array":
	default:
		return nil, &MappingError{Want: "list", Got: kindOf(data)}
	}

	var items []json.RawMessage
	if err := sonic.Unmarshal(data, &items); err != nil {
		return nil, crerr.Wrap(err, "decode wire list")
	}

	out := make([]P, 0, len(items))
	for i, item := range items {
		kind := kindOf(item)
		if kind == "null" && keepNull {
			out = append(out, nil)
			continue
		}
		if kind != "object" {
			return nil, withIndex(&MappingError{Want: "object", Got: kind}, i)
		}
		rec := P(new(T))
		if err := decodeRecord(item, rec); err != nil {
			return nil, withIndex(err, i)
		}
		out = append(out, rec)
	}
	return out, nil
}

// decodeRecord prefers the record's own UnmarshalJSON, which may read keys
// kept outside its schema.
func decodeRecord(data []byte, rec Record) error {
	if u, ok := rec.(json.Unmarshaler); ok {
		return u.UnmarshalJSON(data)
	}
	return Unmarshal(data, rec)
}
