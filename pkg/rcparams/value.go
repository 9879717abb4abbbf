// ABOUTME: Tagged configuration values: string, number, bool, none, list, cycle
// ABOUTME: Values compare structurally and render in Python-literal syntax

package rcparams

import (
	"strconv"
	"strings"
)

// Kind identifies the dynamic type held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindCycle
)

var kindNames = [...]string{
	KindNone:   "none",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "bool",
	KindList:   "list",
	KindCycle:  "cycle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single configuration value. The zero Value is None.
type Value struct {
	kind  Kind
	str   string
	num   float64
	flag  bool
	items []Value
}

// None returns the empty value.
func None() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// List returns a list value holding a copy of items.
func List(items ...Value) Value {
	return Value{kind: KindList, items: append([]Value(nil), items...)}
}

// Strings returns a list value of string items.
func Strings(ss ...string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return Value{kind: KindList, items: items}
}

// Cycle returns a color cycle over the given colors, in order.
func Cycle(colors ...string) Value {
	v := Strings(colors...)
	v.kind = KindCycle
	return v
}

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is the empty value.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Str returns the string held by v.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Num returns the number held by v.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Boolean returns the bool held by v.
func (v Value) Boolean() (bool, bool) { return v.flag, v.kind == KindBool }

// Items returns a copy of the elements of a list or cycle value.
func (v Value) Items() []Value {
	if v.kind != KindList && v.kind != KindCycle {
		return nil
	}
	return append([]Value(nil), v.items...)
}

// Colors returns the ordered colors of a cycle, or of a list whose items are
// all strings. It returns nil for anything else.
func (v Value) Colors() []string {
	if v.kind != KindList && v.kind != KindCycle {
		return nil
	}
	out := make([]string, 0, len(v.items))
	for _, it := range v.items {
		s, ok := it.Str()
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}

// Text returns the raw string of a string value and the literal form of
// anything else. It is the form display fields mirror from the store.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindList:
		parts := make([]string, len(v.items))
		for i, it := range v.items {
			parts[i] = it.Text()
		}
		return strings.Join(parts, ", ")
	default:
		return v.Literal()
	}
}

// Equal reports whether v and o hold the same kind and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.flag == o.flag
	default:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
}

// Literal renders v in the definition file syntax.
func (v Value) Literal() string {
	var b strings.Builder
	v.writeLiteral(&b)
	return b.String()
}

// String implements fmt.Stringer with the literal form.
func (v Value) String() string { return v.Literal() }

func (v Value) writeLiteral(b *strings.Builder) {
	switch v.kind {
	case KindNone:
		b.WriteString("None")
	case KindString:
		b.WriteString(quote(v.str))
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case KindBool:
		if v.flag {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case KindList:
		writeItems(b, v.items)
	case KindCycle:
		b.WriteString("cycler('color', ")
		writeItems(b, v.items)
		b.WriteByte(')')
	}
}

func writeItems(b *strings.Builder, items []Value) {
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		it.writeLiteral(b)
	}
	b.WriteByte(']')
}

// quote renders s the way Python's repr does: single quotes unless s
// contains a single quote and no double quote.
func quote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case q:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}
