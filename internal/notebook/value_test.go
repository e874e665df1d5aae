package notebook

import "testing"

func TestValueCanonicalEquality(t *testing.T) {
	a := MustValue(`{"b": 1, "a": {"y": [1, 2], "x": "s"}}`)
	b := MustValue(`{"a":{"x":"s","y":[1,2]},"b":1}`)
	if !a.Equal(b) {
		t.Errorf("Equal() = false for %s and %s", a, b)
	}
	if got := a.String(); got != `{"a":{"x":"s","y":[1,2]},"b":1}` {
		t.Errorf("String() = %s", got)
	}
}

func TestValuePreservesNumbers(t *testing.T) {
	v := MustValue(`{"n": 1.50, "big": 12345678901234567890}`)
	if got := v.Get("n").Raw; got != "1.50" {
		t.Errorf("n raw = %q, want %q", got, "1.50")
	}
	if got := v.Get("big").Raw; got != "12345678901234567890" {
		t.Errorf("big raw = %q", got)
	}
}

func TestValueNull(t *testing.T) {
	var v Value
	if !v.IsNull() || v.String() != "null" {
		t.Errorf("zero Value = %s, want null", v)
	}
	parsed, err := ParseValue([]byte(" null "))
	if err != nil || !parsed.Equal(v) {
		t.Errorf("ParseValue(null) = %s, %v", parsed, err)
	}
	if _, err := ParseValue([]byte("{")); err == nil {
		t.Error("ParseValue({) error = nil, want error")
	}
}

func TestValueSetLookupDelete(t *testing.T) {
	v, err := EmptyObject().Set("collapsed", true)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !v.Get("collapsed").Bool() {
		t.Errorf("collapsed = false after Set")
	}

	v, err = v.Set(EscapePath("application/vnd.custom.v1+json"), "x")
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := v.Lookup("application/vnd.custom.v1+json").String(); got != "x" {
		t.Errorf("Lookup() = %q, want %q", got, "x")
	}

	v, err = v.Delete("collapsed")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if v.Get("collapsed").Exists() {
		t.Error("collapsed still present after Delete")
	}
	if v.Len() != 1 {
		t.Errorf("Len() = %d, want 1", v.Len())
	}
}

func TestMIMEText(t *testing.T) {
	data := MustValue(`{"text/plain": ["a\n", "b"], "text/html": "<p>"}`)
	if got, ok := MIMEText(data, MIMEPlain); !ok || got != "a\nb" {
		t.Errorf("MIMEText(text/plain) = %q, %v", got, ok)
	}
	if _, ok := MIMEText(data, "image/png"); ok {
		t.Error("MIMEText(image/png) ok = true, want false")
	}
}
