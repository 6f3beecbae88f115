package wire

import (
	"bytes"
	"encoding/json"
	"sort"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// Object is a JSON object whose members are kept in insertion order, so an
// encoded record lists its keys in the order its schema declares them.
type Object struct {
	keys   []string
	values map[string]json.RawMessage
}

func NewObject() *Object {
	return &Object{values: make(map[string]json.RawMessage)}
}

// ParseObject decodes data, which must be a JSON object. Keys of a parsed
// object are sorted.
func ParseObject(data []byte) (*Object, error) {
	obj := NewObject()
	if err := obj.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return obj, nil
}

func (o *Object) Set(key string, raw json.RawMessage) {
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

// SetValue encodes v and stores it under key.
func (o *Object) SetValue(key string, v any) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return crerr.Wrapf(err, "encode wire key %q", key)
	}
	o.Set(key, raw)
	return nil
}

func (o *Object) Get(key string) (json.RawMessage, bool) {
	if o == nil {
		return nil, false
	}
	raw, ok := o.values[key]
	return raw, ok
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		encodedKey, err := sonic.Marshal(key)
		if err != nil {
			return nil, crerr.Wrapf(err, "encode wire key %q", key)
		}
		_, _ = buf.Write(encodedKey)
		_ = buf.WriteByte(':')

		raw := o.values[key]
		if len(bytes.TrimSpace(raw)) == 0 {
			raw = json.RawMessage("null")
		}
		_, _ = buf.Write(raw)
	}
	_ = buf.WriteByte('}')

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func (o *Object) UnmarshalJSON(data []byte) error {
	if kind := kindOf(data); kind != "object" {
		return &MappingError{Want: "object", Got: kind}
	}

	values := make(map[string]json.RawMessage)
	if err := sonic.Unmarshal(data, &values); err != nil {
		return crerr.Wrap(err, "decode wire object")
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	o.keys = keys
	o.values = values
	return nil
}
