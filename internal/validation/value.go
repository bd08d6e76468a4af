package validation

import "net/url"

// Value is one raw field as submitted by a form: a piece of text, a ticked
// checkbox, or nothing at all. The zero Value is absent.
type Value struct {
	text    string
	present bool
}

func Text(s string) Value {
	return Value{text: s, present: true}
}

// Checked is what a browser sends for a ticked checkbox.
func Checked() Value {
	return Value{text: "on", present: true}
}

func Absent() Value {
	return Value{}
}

func (v Value) Present() bool {
	return v.present
}

func (v Value) String() string {
	return v.text
}

// Blank reports whether the value is absent or zero-length text.
func (v Value) Blank() bool {
	return !v.present || v.text == ""
}

// Raw is the untyped input of one submission, keyed by boundary field name.
type Raw map[string]Value

// FromForm builds a Raw from decoded form values. The first value of a repeated key wins.
func FromForm(values url.Values) Raw {
	raw := make(Raw, len(values))
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		raw[key] = Text(vs[0])
	}
	return raw
}

// FromMap is a convenience for callers that already hold plain strings, such as fixtures.
func FromMap(m map[string]string) Raw {
	raw := make(Raw, len(m))
	for key, s := range m {
		raw[key] = Text(s)
	}
	return raw
}
