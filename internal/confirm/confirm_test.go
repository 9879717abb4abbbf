// ABOUTME: Tests for the overwrite confirmation model and the line-based fallback
// ABOUTME: Drives Update with tea.KeyMsg and the policy with in-memory readers

package confirm

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Compile-time check: Model must satisfy tea.Model.
var _ tea.Model = Model{}

func TestModel_Init(t *testing.T) {
	if cmd := NewModel("paper").Init(); cmd != nil {
		t.Error("Init() returned non-nil cmd")
	}
}

func TestModel_ViewNamesTheme(t *testing.T) {
	view := NewModel("paper").View()
	for _, want := range []string{"paper", "overwrite", "[y] Yes", "[n] No"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q; got:\n%s", want, view)
		}
	}
}

func TestModel_Keys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want bool
	}{
		{"y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, true},
		{"Y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, true},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, cmd := NewModel("paper").Update(tt.msg)
			if cmd == nil {
				t.Fatal("Update() returned nil cmd; want tea.Quit")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T; want tea.QuitMsg", cmd())
			}
			m := updated.(Model)
			if m.Confirmed() != tt.want {
				t.Errorf("Confirmed() = %v; want %v", m.Confirmed(), tt.want)
			}
			if m.View() != "" {
				t.Error("View() not empty after answering")
			}
		})
	}
}

func TestModel_IgnoresOtherKeys(t *testing.T) {
	updated, cmd := NewModel("paper").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Error("Update('q') returned a cmd")
	}
	if updated.(Model).Confirmed() {
		t.Error("Update('q') confirmed")
	}
	if _, cmd := NewModel("paper").Update(tea.WindowSizeMsg{Width: 80}); cmd != nil {
		t.Error("Update(WindowSizeMsg) returned a cmd")
	}
}

func TestPolicy_LineFallback(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{" Yes \n", true},
		{"yes please\n", false},
		{"n\n", false},
		{"no, sorry\n", false},
		{"nay\n", false},
		{"any\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := Policy(strings.NewReader(tt.input), &out)("paper")
		if got != tt.want {
			t.Errorf("Policy(%q) = %v; want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "A theme named paper already exists") {
			t.Errorf("prompt = %q", out.String())
		}
	}
}
