// ABOUTME: Tests for the mapping literal parser and serializer
// ABOUTME: Covers value kinds, cycler calls, escapes, syntax errors and round trips

package rcparams

import (
	"errors"
	"testing"
)

func TestParseMapping_ValueKinds(t *testing.T) {
	t.Parallel()

	src := `{'axes.facecolor': '#fff',
'axes.linewidth': 1.25,
'figure.dpi': 100,
'axes.grid': True,
'xtick.top': False,
'savefig.bbox': None,
'font.family': ['serif'],
'figure.figsize': (6.4, 4.8),
'axes.formatter.limits': [-5, 6]}`

	m, err := ParseMapping([]byte(src))
	if err != nil {
		t.Fatalf("ParseMapping() error: %v", err)
	}

	tests := []struct {
		key  string
		want Value
	}{
		{"axes.facecolor", String("#fff")},
		{"axes.linewidth", Number(1.25)},
		{"figure.dpi", Number(100)},
		{"axes.grid", Bool(true)},
		{"xtick.top", Bool(false)},
		{"savefig.bbox", None()},
		{"font.family", Strings("serif")},
		{"figure.figsize", List(Number(6.4), Number(4.8))},
		{"axes.formatter.limits", List(Number(-5), Number(6))},
	}
	for _, tt := range tests {
		got, ok := m.Get(tt.key)
		if !ok {
			t.Errorf("key %q missing", tt.key)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("%s = %s; want %s", tt.key, got, tt.want)
		}
	}

	wantOrder := []string{"axes.facecolor", "axes.linewidth", "figure.dpi"}
	for i, k := range wantOrder {
		if m.Keys()[i] != k {
			t.Errorf("Keys()[%d] = %q; want %q", i, m.Keys()[i], k)
		}
	}
}

func TestParseMapping_Cycler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"positional", `{'axes.prop_cycle': cycler('color', ['#111', '#222'])}`},
		{"keyword", `{'axes.prop_cycle': cycler(color=['#111', '#222'])}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := ParseMapping([]byte(tt.src))
			if err != nil {
				t.Fatalf("ParseMapping() error: %v", err)
			}
			v, _ := m.Get(PropCycle)
			if v.Kind() != KindCycle {
				t.Fatalf("Kind() = %s; want cycle", v.Kind())
			}
			if got := v.Colors(); len(got) != 2 || got[0] != "#111" || got[1] != "#222" {
				t.Errorf("Colors() = %v; want [#111 #222]", got)
			}
		})
	}
}

func TestParseMapping_DuplicateKeysKeepFirstPosition(t *testing.T) {
	t.Parallel()

	m, err := ParseMapping([]byte(`{'a': 1, 'b': 2, 'a': 3}`))
	if err != nil {
		t.Fatalf("ParseMapping() error: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", m.Len())
	}
	if m.Keys()[0] != "a" {
		t.Errorf("first key = %q; want a", m.Keys()[0])
	}
	if v, _ := m.Get("a"); !v.Equal(Number(3)) {
		t.Errorf("a = %s; want 3", v)
	}
}

func TestParseMapping_CommentsAndTrailingComma(t *testing.T) {
	t.Parallel()

	src := "# exported theme\n{'a': 'x', # inline\n 'b': [1, 2,],\n}\n"
	m, err := ParseMapping([]byte(src))
	if err != nil {
		t.Fatalf("ParseMapping() error: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d; want 2", m.Len())
	}
}

func TestParseMapping_Escapes(t *testing.T) {
	t.Parallel()

	m, err := ParseMapping([]byte(`{'s': 'it\'s a\ttab\\ \x41é', 'd': "say \"hi\""}`))
	if err != nil {
		t.Fatalf("ParseMapping() error: %v", err)
	}
	if v, _ := m.Get("s"); !v.Equal(String("it's a\ttab\\ Aé")) {
		t.Errorf("s = %s", v)
	}
	if v, _ := m.Get("d"); !v.Equal(String(`say "hi"`)) {
		t.Errorf("d = %s", v)
	}
}

func TestParseMapping_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"not a mapping", "['a', 'b']"},
		{"unterminated", "{'a': 1"},
		{"missing colon", "{'a' 1}"},
		{"bare key", "{a: 1}"},
		{"numeric key", "{1: 2}"},
		{"unknown name", "{'a': true}"},
		{"unterminated string", "{'a': 'x}"},
		{"trailing garbage", "{'a': 1} x"},
		{"expression", "{'a': __import__('os')}"},
		{"bad cycler prop", "{'a': cycler('linestyle', ['-'])}"},
		{"cycler non-strings", "{'a': cycler('color', [1, 2])}"},
		{"lone minus", "{'a': -}"},
		{"overflow", "{'a': 1e999}"},
		{"two mappings", "{} {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseMapping([]byte(tt.src))
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("ParseMapping(%q) error = %v; want ErrSyntax", tt.src, err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) || se.Line < 1 || se.Col < 1 {
				t.Errorf("expected positioned *SyntaxError, got %#v", err)
			}
		})
	}
}

func TestSyntaxError_Position(t *testing.T) {
	t.Parallel()

	_, err := ParseMapping([]byte("{'a': 1,\n'b' 2}"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if se.Line != 2 {
		t.Errorf("Line = %d; want 2", se.Line)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewMapping(
		Entry{"axes.facecolor", String("#fff")},
		Entry{"quote.single", String("it's")},
		Entry{"quote.both", String(`it's "both"`)},
		Entry{"ctrl", String("a\nb\tc\\d")},
		Entry{"n", Number(0.0001)},
		Entry{"big", Number(1e21)},
		Entry{"neg", Number(-3)},
		Entry{"b", Bool(true)},
		Entry{"none", None()},
		Entry{"empty", List()},
		Entry{"nested", List(Strings("a", "b"), Number(1))},
		Entry{PropCycle, Cycle("#111", "#222")},
		Entry{"cycler-prop-cycles", Strings("#111", "#222", "#333")},
	)

	out := Format(m)
	back, err := ParseMapping(out)
	if err != nil {
		t.Fatalf("ParseMapping(Format()) error: %v\n%s", err, out)
	}
	if !back.Equal(m) {
		t.Errorf("round trip mismatch:\n%s", out)
	}
	for i, k := range m.Keys() {
		if back.Keys()[i] != k {
			t.Errorf("order changed at %d: %q vs %q", i, back.Keys()[i], k)
		}
	}
}

func TestFormat_Layout(t *testing.T) {
	t.Parallel()

	m := NewMapping(
		Entry{"figure.facecolor", String("#fff")},
		Entry{"cycler-prop-cycles", Strings("#111", "#222")},
	)
	want := "{'figure.facecolor': '#fff',\n'cycler-prop-cycles': ['#111', '#222']}\n"
	if got := string(Format(m)); got != want {
		t.Errorf("Format() = %q; want %q", got, want)
	}
	if got := string(Format(&Mapping{})); got != "{}\n" {
		t.Errorf("Format(empty) = %q; want %q", got, "{}\n")
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Value
	}{
		{"0.5", Number(0.5)},
		{"'serif'", String("serif")},
		{"[1, 2]", List(Number(1), Number(2))},
		{"True", Bool(true)},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		if err != nil {
			t.Errorf("ParseValue(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseValue(%q) = %s; want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseValue("serif"); !errors.Is(err, ErrSyntax) {
		t.Errorf("ParseValue(bare word) error = %v; want ErrSyntax", err)
	}
}
