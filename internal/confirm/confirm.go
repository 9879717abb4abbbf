// ABOUTME: Overwrite confirmation for saving themes: a Bubble Tea y/n prompt on terminals
// ABOUTME: Falls back to reading one answer line when input is not a terminal

package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mauromedda/plottheme/internal/log"
	"github.com/mauromedda/plottheme/pkg/theme"
)

var (
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "3"})
	yesStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Model asks whether an existing theme may be overwritten.
// Implements tea.Model with value semantics.
type Model struct {
	name     string
	answered bool
	yes      bool
}

// NewModel creates a Model asking about the theme called name.
func NewModel(name string) Model {
	return Model{name: name}
}

// Init returns nil; no commands needed at startup.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles y/n keys. Enter, esc and ctrl+c decline.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyRunes:
		if len(key.Runes) == 0 {
			break
		}
		switch key.Runes[0] {
		case 'y', 'Y':
			m.answered, m.yes = true, true
			return m, tea.Quit
		case 'n', 'N':
			m.answered = true
			return m, tea.Quit
		}
	case tea.KeyEnter, tea.KeyEsc, tea.KeyCtrlC:
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the question, or nothing once answered.
func (m Model) View() string {
	if m.answered {
		return ""
	}
	return fmt.Sprintf("%s\n%s  %s\n",
		warnStyle.Render(fmt.Sprintf("A theme named %s already exists, would you like to overwrite?", m.name)),
		yesStyle.Render("[y] Yes"),
		noStyle.Render("[n] No"),
	)
}

// Confirmed reports whether the user accepted.
func (m Model) Confirmed() bool { return m.answered && m.yes }

// Policy returns an overwrite policy that asks on in and writes the prompt
// to out. Terminals get the interactive prompt; other inputs are read as
// one line, accepted when it contains a y.
func Policy(in io.Reader, out io.Writer) theme.OverwritePolicy {
	return func(name string) bool {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return ask(name, in, out)
		}
		return askLine(name, in, out)
	}
}

func ask(name string, in io.Reader, out io.Writer) bool {
	p := tea.NewProgram(NewModel(name), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		log.Warn("confirm: prompt failed: %v", err)
		return false
	}
	m, ok := final.(Model)
	return ok && m.Confirmed()
}

func askLine(name string, in io.Reader, out io.Writer) bool {
	fmt.Fprintf(out, "A theme named %s already exists, would you like to overwrite? [y/n] ", name)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
