package tsconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is a single key/value pair of a tsconfig object.
type Option struct {
	Key   string
	Value any
}

// Options is an ordered JSON object. Keys serialize in the order they were
// authored, which keeps generated files stable and readable.
//
// Values must be JSON-compatible: string, bool, numbers, []any, []string,
// Options or nil.
type Options []Option

// Get returns the value stored under key.
func (o Options) Get(key string) (any, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (o Options) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the keys in order.
func (o Options) Keys() []string {
	keys := make([]string, len(o))
	for i, opt := range o {
		keys[i] = opt.Key
	}
	return keys
}

// Set returns a copy of o with key set to value. An existing key keeps its
// position; a new key is appended.
func (o Options) Set(key string, value any) Options {
	out := make(Options, len(o), len(o)+1)
	copy(out, o)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Option{Key: key, Value: value})
}

// Merge returns a copy of o with every option of other applied via Set.
func (o Options) Merge(other Options) Options {
	out := make(Options, len(o), len(o)+len(other))
	copy(out, o)
	for _, opt := range other {
		out = out.Set(opt.Key, opt.Value)
	}
	return out
}

// MarshalJSON writes the object with keys in authored order.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalValue(opt.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalValue(opt.Value)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", opt.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders o the way it is written to disk: two-space indentation,
// no HTML escaping, trailing newline.
func (o Options) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
