package schedule

import (
	"strconv"
	"strings"
)

// ScheduledMarker is the cell text that marks a scheduled day.
const ScheduledMarker = "X"

// ValueKind distinguishes coerced booleans from pass-through text.
type ValueKind int

const (
	// ValueBool is a day cell that was empty or carried the scheduled marker.
	ValueBool ValueKind = iota
	// ValueText is any other cell content, kept verbatim.
	ValueText
)

// Value is the content of one day cell in a normalized row.
type Value struct {
	Kind ValueKind
	Bool bool
	Text string
}

// Bool returns a boolean day value.
func Bool(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// Text returns an uncoerced text value.
func Text(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// Coerce converts raw cell text to a day value: empty becomes false, the
// scheduled marker becomes true and anything else is kept as text.
func Coerce(cell string) Value {
	return Text(cell).Normalize()
}

// Normalize applies the day-cell coercion. Boolean values are returned as is,
// so Normalize is idempotent.
func (v Value) Normalize() Value {
	if v.Kind == ValueBool {
		return v
	}
	switch strings.TrimSpace(v.Text) {
	case "":
		return Bool(false)
	case ScheduledMarker:
		return Bool(true)
	}
	return v
}

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool {
	return v.Kind == ValueBool
}

// Scheduled reports whether v is the boolean true.
func (v Value) Scheduled() bool {
	return v.Kind == ValueBool && v.Bool
}

// String renders booleans as "true"/"false" and text verbatim.
func (v Value) String() string {
	if v.Kind == ValueBool {
		return strconv.FormatBool(v.Bool)
	}
	return v.Text
}
