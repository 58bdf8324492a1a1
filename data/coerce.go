package data

import (
	"strconv"
	"strings"

	"github.com/flexon-format/go-flexon/memory"
)

// Coercion accessors are total: every kind maps to a best estimate of the
// requested type and no accessor ever fails. The stored representation is
// never mutated by a coercion.

// AsBool coerces to bool. Numbers are true when non-zero; strings and byte
// ranges are true when they read "true" case-insensitively; everything else
// is false.
func (d *Data) AsBool() bool {
	switch d.kind {
	case BoolKind:
		return d.b
	case NumberKind:
		if d.isFloat {
			return d.f64 != 0
		}
		return d.i64 != 0
	case StringKind:
		return strings.EqualFold(d.strVal(), "true")
	case BytesKind:
		return strings.EqualFold(d.text(), "true")
	default:
		return false
	}
}

// AsInt coerces to int, truncating floats toward zero.
func (d *Data) AsInt() int {
	return int(d.AsInt64())
}

// AsInt64 coerces to int64. Strings parse their longest leading numeric
// run; anything unparsable is 0.
func (d *Data) AsInt64() int64 {
	switch d.kind {
	case BoolKind:
		if d.b {
			return 1
		}
		return 0
	case NumberKind:
		if d.isFloat {
			return int64(d.f64)
		}
		return d.i64
	case StringKind:
		return leadingInt64(d.strVal())
	case BytesKind:
		return leadingInt64(d.text())
	default:
		return 0
	}
}

// AsFloat64 coerces to float64 under the same rules as AsInt64.
func (d *Data) AsFloat64() float64 {
	switch d.kind {
	case BoolKind:
		if d.b {
			return 1
		}
		return 0
	case NumberKind:
		if d.isFloat {
			return d.f64
		}
		return float64(d.i64)
	case StringKind:
		return leadingFloat64(d.strVal())
	case BytesKind:
		return leadingFloat64(d.text())
	default:
		return 0
	}
}

// AsString coerces to text: "true"/"false" for bools, canonical decimal for
// numbers, "null" for null, the decoded text for byte ranges, and the
// canonical encoding for composites.
func (d *Data) AsString() string {
	switch d.kind {
	case StringKind:
		return d.strVal()
	case BytesKind:
		return d.text()
	case ListKind, MapKind, OpaqueKind:
		return d.String()
	default:
		return d.scalarString()
	}
}

// AsBytes returns the value's text as bytes. For a bytes value this
// materializes the view; other kinds go through AsString.
func (d *Data) AsBytes() []byte {
	if d.kind == BytesKind && d.view != nil {
		b, err := d.view.Bytes()
		if err != nil {
			return nil
		}
		return b
	}
	return []byte(d.AsString())
}

// AsView returns the underlying memory view of a bytes value; other kinds
// get a fresh view over their textual form.
func (d *Data) AsView() *memory.View {
	if d.view != nil && (d.kind == BytesKind || d.kind == StringKind) {
		return d.view
	}
	return memory.FromString(d.AsString())
}

// strVal returns the text of a string value, materializing a view-backed
// string on first use (the view caches the result).
func (d *Data) strVal() string {
	if d.view != nil {
		return d.text()
	}
	return d.str
}

// text decodes a view, empty for disposed views.
func (d *Data) text() string {
	if d.view == nil {
		return ""
	}
	s, err := d.view.String()
	if err != nil {
		return ""
	}
	return s
}

// scalarString is the canonical text of a scalar, the form the encoder
// writes (without quoting).
func (d *Data) scalarString() string {
	switch d.kind {
	case NullKind:
		return "null"
	case BoolKind:
		if d.b {
			return "true"
		}
		return "false"
	case NumberKind:
		if d.isFloat {
			return strconv.FormatFloat(d.f64, 'g', -1, 64)
		}
		return strconv.FormatInt(d.i64, 10)
	case StringKind:
		return d.strVal()
	case BytesKind:
		return d.text()
	default:
		return ""
	}
}

// leadingInt64 parses the longest leading integer run of s, falling back to
// the float run truncated toward zero, else 0.
func leadingInt64(s string) int64 {
	intLen, numLen := numericRun(s)
	if intLen > 0 && intLen == numLen {
		if i, err := strconv.ParseInt(s[:intLen], 10, 64); err == nil {
			return i
		}
	}
	if numLen > 0 {
		if f, err := strconv.ParseFloat(s[:numLen], 64); err == nil {
			return int64(f)
		}
	}
	return 0
}

// leadingFloat64 parses the longest leading numeric run of s, else 0.
func leadingFloat64(s string) float64 {
	_, numLen := numericRun(s)
	if numLen > 0 {
		if f, err := strconv.ParseFloat(s[:numLen], 64); err == nil {
			return f
		}
	}
	return 0
}

// numericRun scans the longest prefix of s shaped like
// [+-]digits[.digits][(e|E)[+-]digits] and returns the length of its
// integer part and of the whole run. Both are 0 when s has no leading
// number.
func numericRun(s string) (intLen, numLen int) {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	ds := i
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == ds {
		return 0, 0
	}
	intLen = i
	numLen = i
	if i < n && s[i] == '.' {
		j := i + 1
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > i+1 {
			i = j
			numLen = i
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < n && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			numLen = k
		}
	}
	return intLen, numLen
}
