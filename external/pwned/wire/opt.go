package wire

type presence uint8

const (
	unset presence = iota
	null
	present
)

// Opt is a record field as seen on the wire. It keeps the difference between a
// key the server never sent, a key sent as null and a key carrying a value;
// only the first is omitted when the record is encoded again.
type Opt[T any] struct {
	value T
	state presence
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, state: present}
}

func Null[T any]() Opt[T] {
	return Opt[T]{state: null}
}

// Get returns the value, or the zero value when the field is unset or null.
func (o Opt[T]) Get() T {
	return o.value
}

func (o Opt[T]) Lookup() (T, bool) {
	return o.value, o.state == present
}

func (o Opt[T]) Or(fallback T) T {
	if o.state != present {
		return fallback
	}
	return o.value
}

// IsSet reports whether the field was assigned, including an explicit null.
func (o Opt[T]) IsSet() bool {
	return o.state != unset
}

func (o Opt[T]) IsNull() bool {
	return o.state == null
}

func (o *Opt[T]) Set(v T) {
	o.value = v
	o.state = present
}

func (o *Opt[T]) SetNull() {
	var zero T
	o.value = zero
	o.state = null
}

func (o *Opt[T]) Unset() {
	var zero T
	o.value = zero
	o.state = unset
}
