// ABOUTME: Parser and serializer for the Python-literal mapping text format
// ABOUTME: Accepts strings, numbers, True/False/None, lists, tuples and cycler() calls

package rcparams

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes malformed literal text.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) succeed.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// ParseMapping parses a single mapping literal such as
//
//	{'axes.facecolor': '#fff',
//	'cycler-prop-cycles': ['#111', '#222', '#333']}
//
// Duplicate keys keep their first position and their last value.
func ParseMapping(data []byte) (*Mapping, error) {
	p := &parser{src: data, line: 1, col: 1}
	p.skipSpace()
	m, err := p.mapping()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after mapping", p.peek())
	}
	return m, nil
}

// ParseValue parses a single value literal such as 0.8, 'serif' or [1, 2].
func ParseValue(s string) (Value, error) {
	p := &parser{src: []byte(s), line: 1, col: 1}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if !p.eof() {
		return Value{}, p.errorf("unexpected %q after value", p.peek())
	}
	return v, nil
}

// Format serializes m as a mapping literal with one entry per line.
// ParseMapping(Format(m)) yields a mapping equal to m.
func Format(m *Mapping) []byte {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(quote(e.Key))
		b.WriteString(": ")
		e.Value.writeLiteral(&b)
	}
	b.WriteString("}\n")
	return []byte(b.String())
}

type parser struct {
	src  []byte
	pos  int
	line int
	col  int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.line, Col: p.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch c := p.peek(); {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.advance()
		case c == '#':
			for !p.eof() && p.peek() != '\n' {
				p.advance()
			}
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.eof() {
		return p.errorf("expected %q, got end of input", c)
	}
	if p.peek() != c {
		return p.errorf("expected %q, got %q", c, p.peek())
	}
	p.advance()
	return nil
}

func (p *parser) mapping() (*Mapping, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	m := &Mapping{}
	for {
		p.skipSpace()
		if p.peek() == '}' {
			p.advance()
			return m, nil
		}
		if p.eof() {
			return nil, p.errorf("unterminated mapping")
		}
		if c := p.peek(); c != '\'' && c != '"' {
			return nil, p.errorf("mapping keys must be strings, got %q", c)
		}
		key, err := p.str()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		p.skipSpace()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		m.Set(key, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.advance()
		case '}':
		default:
			if p.eof() {
				return nil, p.errorf("unterminated mapping")
			}
			return nil, p.errorf("expected ',' or '}', got %q", p.peek())
		}
	}
}

func (p *parser) value() (Value, error) {
	if p.eof() {
		return Value{}, p.errorf("expected value, got end of input")
	}
	switch c := p.peek(); {
	case c == '\'' || c == '"':
		s, err := p.str()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == '[':
		items, err := p.items('[', ']')
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindList, items: items}, nil
	case c == '(':
		items, err := p.items('(', ')')
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindList, items: items}, nil
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		return p.word()
	default:
		return Value{}, p.errorf("unexpected %q", c)
	}
}

func (p *parser) items(open, closing byte) ([]Value, error) {
	if err := p.expect(open); err != nil {
		return nil, err
	}
	var items []Value
	for {
		p.skipSpace()
		if p.peek() == closing {
			p.advance()
			return items, nil
		}
		if p.eof() {
			return nil, p.errorf("unterminated sequence")
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.advance()
		case closing:
		default:
			if p.eof() {
				return nil, p.errorf("unterminated sequence")
			}
			return nil, p.errorf("expected ',' or %q, got %q", closing, p.peek())
		}
	}
}

func (p *parser) word() (Value, error) {
	line, col := p.line, p.col
	start := p.pos
	for !p.eof() && isIdentPart(p.peek()) {
		p.advance()
	}
	switch w := string(p.src[start:p.pos]); w {
	case "True":
		return Bool(true), nil
	case "False":
		return Bool(false), nil
	case "None":
		return None(), nil
	case "cycler":
		return p.cycler()
	default:
		return Value{}, &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf("unknown name %q", w)}
	}
}

// cycler parses the argument list of cycler('color', [...]) or
// cycler(color=[...]). Only the color property is supported.
func (p *parser) cycler() (Value, error) {
	if err := p.expect('('); err != nil {
		return Value{}, err
	}
	p.skipSpace()
	var prop string
	if c := p.peek(); c == '\'' || c == '"' {
		s, err := p.str()
		if err != nil {
			return Value{}, err
		}
		prop = s
		if err := p.expect(','); err != nil {
			return Value{}, err
		}
	} else {
		start := p.pos
		for !p.eof() && isIdentPart(p.peek()) {
			p.advance()
		}
		prop = string(p.src[start:p.pos])
		if err := p.expect('='); err != nil {
			return Value{}, err
		}
	}
	if prop != "color" {
		return Value{}, p.errorf("unsupported cycler property %q", prop)
	}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return Value{}, err
	}
	colors := v.Colors()
	if v.Kind() != KindList || colors == nil {
		return Value{}, p.errorf("cycler colors must be a list of strings")
	}
	p.skipSpace()
	if p.peek() == ',' {
		p.advance()
	}
	if err := p.expect(')'); err != nil {
		return Value{}, err
	}
	return Cycle(colors...), nil
}

func (p *parser) number() (Value, error) {
	line, col := p.line, p.col
	start := p.pos
	if c := p.peek(); c == '-' || c == '+' {
		p.advance()
	}
	digits := 0
	for !p.eof() && isDigit(p.peek()) {
		p.advance()
		digits++
	}
	if p.peek() == '.' {
		p.advance()
		for !p.eof() && isDigit(p.peek()) {
			p.advance()
			digits++
		}
	}
	if digits == 0 {
		return Value{}, &SyntaxError{Line: line, Col: col, Msg: "malformed number"}
	}
	if c := p.peek(); c == 'e' || c == 'E' {
		p.advance()
		if c := p.peek(); c == '-' || c == '+' {
			p.advance()
		}
		exp := 0
		for !p.eof() && isDigit(p.peek()) {
			p.advance()
			exp++
		}
		if exp == 0 {
			return Value{}, &SyntaxError{Line: line, Col: col, Msg: "malformed exponent"}
		}
	}
	text := string(p.src[start:p.pos])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) {
		return Value{}, &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf("number %q out of range", text)}
	}
	return Number(f), nil
}

func (p *parser) str() (string, error) {
	line, col := p.line, p.col
	q := p.advance()
	var b strings.Builder
	for {
		if p.eof() {
			return "", &SyntaxError{Line: line, Col: col, Msg: "unterminated string"}
		}
		c := p.advance()
		switch {
		case c == q:
			return b.String(), nil
		case c == '\n':
			return "", &SyntaxError{Line: line, Col: col, Msg: "newline in string"}
		case c == '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
		default:
			b.WriteByte(c)
		}
	}
}

func (p *parser) escape(b *strings.Builder) error {
	if p.eof() {
		return p.errorf("unterminated escape")
	}
	c := p.advance()
	switch c {
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'x', 'u':
		n := 2
		if c == 'u' {
			n = 4
		}
		if p.pos+n > len(p.src) {
			return p.errorf("truncated \\%c escape", c)
		}
		hex := string(p.src[p.pos : p.pos+n])
		r, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return p.errorf("invalid \\%c escape %q", c, hex)
		}
		for range n {
			p.advance()
		}
		var buf [utf8.UTFMax]byte
		b.Write(buf[:utf8.EncodeRune(buf[:], rune(r))])
	default:
		// Unknown escapes keep the backslash, as Python does.
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
