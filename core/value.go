package core

import "strconv"

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	// KindNone is the sentinel kind, used for "not yet destroyed".
	KindNone Kind = iota

	// KindNumber holds an orderable numeric value (times, counts, traits).
	KindNumber

	// KindText holds an arbitrary string value.
	KindText
)

// Value is a tagged attribute value: none, number, or text.
//
// Value is comparable (usable as a map key and with ==); Equal and Compare
// give attribute equality and ordering explicit, kind-aware definitions.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// None returns the sentinel Value. Its textual form is "none".
func None() Value { return Value{} }

// Num returns a numeric Value.
func Num(f float64) Value { return Value{kind: KindNumber, num: f} }

// Str returns a text Value.
func Str(s string) Value { return Value{kind: KindText, str: s} }

// Kind reports the variant stored in v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is the sentinel.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Float64 returns the numeric payload; ok is false unless v is a number.
func (v Value) Float64() (f float64, ok bool) {
	return v.num, v.kind == KindNumber
}

// Text returns the string payload; ok is false unless v is text.
func (v Value) Text() (s string, ok bool) {
	return v.str, v.kind == KindText
}

// Equal reports kind-and-payload equality.
func (v Value) Equal(o Value) bool { return v == o }

// Compare orders Values totally: none < numbers < text, numbers by value,
// text lexicographically. Returns -1, 0, or +1.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		if v.kind < o.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case KindNumber:
		switch {
		case v.num < o.num:
			return -1
		case v.num > o.num:
			return 1
		}
	case KindText:
		switch {
		case v.str < o.str:
			return -1
		case v.str > o.str:
			return 1
		}
	}
	return 0
}

// Less reports whether v orders strictly before o.
func (v Value) Less(o Value) bool { return v.Compare(o) < 0 }

// String renders the value for display: "none" for the sentinel, the shortest
// exact decimal form for numbers, the raw string for text.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.str
	default:
		return "none"
	}
}

// Attrs is an open attribute mapping for one taxon.
type Attrs map[string]Value

// Clone returns an independent copy of a. Value is a value type, so this is
// a deep copy.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
