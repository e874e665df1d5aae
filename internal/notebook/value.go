package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrInvalidJSON is returned when a Value is built from malformed JSON.
var ErrInvalidJSON = errors.New("invalid JSON value")

// Value is an opaque JSON value kept in canonical compact form (object keys
// sorted, no insignificant whitespace). Number and string literals are kept
// exactly as they were read.
//
// The zero Value is JSON null.
type Value struct {
	raw string
}

var canonicalOptions = &pretty.Options{SortKeys: true}

func canonical(data []byte) string {
	return string(pretty.Ugly(pretty.PrettyOptions(data, canonicalOptions)))
}

// ParseValue builds a Value from raw JSON text.
func ParseValue(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || !json.Valid(data) {
		return Value{}, ErrInvalidJSON
	}
	if string(data) == "null" {
		return Value{}, nil
	}
	return Value{raw: canonical(data)}, nil
}

// MustValue is like ParseValue but panics on malformed input.
// Use only with literals.
func MustValue(raw string) Value {
	v, err := ParseValue([]byte(raw))
	if err != nil {
		panic("notebook: invalid value literal: " + raw)
	}
	return v
}

// NewValue marshals x into a Value.
func NewValue(x any) (Value, error) {
	data, err := marshalNoEscape(x)
	if err != nil {
		return Value{}, err
	}
	return ParseValue(data)
}

// EmptyObject returns the JSON object {}.
func EmptyObject() Value {
	return Value{raw: "{}"}
}

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool {
	return v.raw == ""
}

// IsObject reports whether v is a JSON object.
func (v Value) IsObject() bool {
	return strings.HasPrefix(v.raw, "{")
}

// Raw returns the canonical JSON encoding of v.
func (v Value) Raw() json.RawMessage {
	if v.raw == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(v.raw)
}

// String returns the canonical JSON text.
func (v Value) String() string {
	return string(v.Raw())
}

// Equal reports structural equality.
func (v Value) Equal(other Value) bool {
	return v.raw == other.raw
}

// Get queries v with a gjson path.
func (v Value) Get(path string) gjson.Result {
	return gjson.Get(v.raw, path)
}

// Lookup returns the member named key of an object value. Unlike Get, key
// is taken literally, so MIME types such as "application/vnd.jupyter+json"
// can be used directly.
func (v Value) Lookup(key string) gjson.Result {
	return gjson.Get(v.raw, EscapePath(key))
}

// Set returns a copy of v with the value at path replaced by x.
// A null v is treated as an empty object.
func (v Value) Set(path string, x any) (Value, error) {
	base := v.raw
	if base == "" {
		base = "{}"
	}
	out, err := sjson.Set(base, path, x)
	if err != nil {
		return v, err
	}
	return ParseValue([]byte(out))
}

// Delete returns a copy of v without the value at path.
func (v Value) Delete(path string) (Value, error) {
	if v.raw == "" {
		return v, nil
	}
	out, err := sjson.Delete(v.raw, path)
	if err != nil {
		return v, err
	}
	return ParseValue([]byte(out))
}

// Keys returns the member names of an object value in sorted order.
func (v Value) Keys() []string {
	if !v.IsObject() {
		return nil
	}
	var keys []string
	gjson.Parse(v.raw).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

// Len returns the number of members of an object or elements of an array.
func (v Value) Len() int {
	res := gjson.Parse(v.raw)
	switch {
	case res.IsObject():
		return len(v.Keys())
	case res.IsArray():
		return len(res.Array())
	default:
		return 0
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.Raw(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// EscapePath escapes the gjson/sjson path metacharacters in a single key.
func EscapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func marshalNoEscape(x any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(x); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into raw characters, as nbformat writes
// them. An escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != '\\' || i+1 >= len(data) {
			out = append(out, c)
			continue
		}
		if rest := data[i+1:]; bytes.HasPrefix(rest, []byte("u2028")) || bytes.HasPrefix(rest, []byte("u2029")) {
			if rest[4] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, c, data[i+1])
		i++
	}
	return out
}
