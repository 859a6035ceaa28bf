package mapping

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValueKind discriminates the variants of a RawValue.
type ValueKind string

const (
	KindNull    ValueKind = "null"
	KindText    ValueKind = "text"
	KindDecimal ValueKind = "decimal"
	KindDate    ValueKind = "date"
	KindBool    ValueKind = "bool"
)

// RawValue is the typed result of coercing one spreadsheet cell.
// It is a closed sum type: exactly one variant is populated, selected by Kind.
type RawValue struct {
	kind ValueKind
	text string
	num  decimal.Decimal
	date time.Time
	b    bool
}

// Null returns the null RawValue
func Null() RawValue {
	return RawValue{kind: KindNull}
}

// Text returns a text RawValue
func Text(s string) RawValue {
	return RawValue{kind: KindText, text: s}
}

// Decimal returns a numeric RawValue
func Decimal(d decimal.Decimal) RawValue {
	return RawValue{kind: KindDecimal, num: d}
}

// Date returns a date RawValue
func Date(t time.Time) RawValue {
	return RawValue{kind: KindDate, date: t}
}

// Bool returns a boolean RawValue
func Bool(b bool) RawValue {
	return RawValue{kind: KindBool, b: b}
}

// Kind returns the populated variant
func (v RawValue) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether the value is the null variant
func (v RawValue) IsNull() bool {
	return v.kind == KindNull
}

// AsText returns the text variant; empty string for any other kind
func (v RawValue) AsText() string {
	return v.text
}

// AsDecimal returns the numeric variant; decimal.Zero for any other kind
func (v RawValue) AsDecimal() decimal.Decimal {
	return v.num
}

// AsDate returns the date variant; zero time for any other kind
func (v RawValue) AsDate() time.Time {
	return v.date
}

// AsBool returns the boolean variant; false for any other kind
func (v RawValue) AsBool() bool {
	return v.b
}

// DatePtr returns the date variant as a pointer, nil when the value is null
// or not a date. Ledger records store optional dates as *time.Time.
func (v RawValue) DatePtr() *time.Time {
	if v.kind != KindDate {
		return nil
	}
	d := v.date
	return &d
}
