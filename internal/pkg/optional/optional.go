package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds either a present T or nothing. The zero Value is absent.
// On the wire an absent value is JSON null, and null decodes to absent.
type Value[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

func (o Value[T]) IsPresent() bool {
	return o.ok
}

func (o Value[T]) OrElse(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

func (o *Value[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = Value[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Value[T]{v: v, ok: true}
	return nil
}
