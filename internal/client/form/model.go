package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/caesarlite/internal/caesar"
	"github.com/dmitrijs2005/caesarlite/internal/filex"
)

// Tab identifies a page of the form.
type Tab int

const (
	TabText Tab = iota
	TabFile
)

func (t Tab) String() string {
	if t == TabFile {
		return "File"
	}
	return "Text"
}

// focus targets; the Text tab uses fieldShift and fieldText, the File tab
// uses fieldShift, fieldIn and fieldOut.
type field int

const (
	fieldShift field = iota
	fieldText
	fieldIn
	fieldOut
)

var tabFields = map[Tab][]field{
	TabText: {fieldShift, fieldText},
	TabFile: {fieldShift, fieldIn, fieldOut},
}

// fileDoneMsg reports the result of a file transform started by the form.
type fileDoneMsg struct {
	out string
	err error
}

// Model is the bubbletea model of the form.
type Model struct {
	tab   Tab
	focus int

	shift   textinput.Model
	text    textarea.Model
	inPath  textinput.Model
	outPath textinput.Model

	output    string
	status    string
	statusErr bool

	width  int
	styles styles
}

// New returns a form on the Text tab with the shift field set to shift.
func New(shift int) Model {
	sh := textinput.New()
	sh.Prompt = ""
	sh.CharLimit = 12
	sh.Width = 8
	sh.SetValue(strconv.Itoa(shift))

	ta := textarea.New()
	ta.Placeholder = "Text to encrypt or decrypt"
	ta.ShowLineNumbers = false
	ta.SetHeight(6)

	in := textinput.New()
	in.Placeholder = "input file"
	in.Prompt = ""

	out := textinput.New()
	out.Placeholder = "output file"
	out.Prompt = ""

	m := Model{
		shift:   sh,
		text:    ta,
		inPath:  in,
		outPath: out,
		width:   80,
		styles:  defaultStyles(),
	}
	m.focus = 1
	m.applyFocus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.text.SetWidth(max(20, msg.Width-4))
		return m, nil

	case fileDoneMsg:
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.setStatus("Written: " + msg.out)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+t":
			m.switchTab()
			return m, nil
		case "tab":
			m.moveFocus(1)
			return m, nil
		case "shift+tab":
			m.moveFocus(-1)
			return m, nil
		case "ctrl+e":
			return m.run(caesar.ModeEncrypt)
		case "ctrl+d":
			return m.run(caesar.ModeDecrypt)
		case "ctrl+b":
			m.bruteForce()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focused() {
	case fieldShift:
		m.shift, cmd = m.shift.Update(msg)
	case fieldText:
		m.text, cmd = m.text.Update(msg)
	case fieldIn:
		m.inPath, cmd = m.inPath.Update(msg)
	case fieldOut:
		m.outPath, cmd = m.outPath.Update(msg)
	}
	return m, cmd
}

func (m Model) focused() field {
	return tabFields[m.tab][m.focus]
}

func (m *Model) switchTab() {
	if m.tab == TabText {
		m.tab = TabFile
	} else {
		m.tab = TabText
	}
	m.focus = 1
	m.applyFocus()
}

func (m *Model) moveFocus(delta int) {
	if m.focused() == fieldIn && m.outPath.Value() == "" {
		m.outPath.SetValue(filex.SuggestOutputPath(strings.TrimSpace(m.inPath.Value())))
	}
	n := len(tabFields[m.tab])
	m.focus = (m.focus + delta + n) % n
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.shift.Blur()
	m.text.Blur()
	m.inPath.Blur()
	m.outPath.Blur()

	switch m.focused() {
	case fieldShift:
		m.shift.Focus()
	case fieldText:
		m.text.Focus()
	case fieldIn:
		m.inPath.Focus()
	case fieldOut:
		m.outPath.Focus()
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// run encrypts or decrypts the Text tab in place, or starts the file
// transform on the File tab.
func (m Model) run(mode caesar.Mode) (tea.Model, tea.Cmd) {
	shift, err := caesar.ParseShift(m.shift.Value())
	if err != nil {
		m.setError(err)
		return m, nil
	}

	if m.tab == TabText {
		m.output = caesar.Apply(mode, m.text.Value(), shift)
		verb := "Encrypted"
		if mode == caesar.ModeDecrypt {
			verb = "Decrypted"
		}
		m.setStatus(fmt.Sprintf("%s with shift %d", verb, shift))
		return m, nil
	}

	in := strings.TrimSpace(m.inPath.Value())
	out := strings.TrimSpace(m.outPath.Value())
	if in == "" {
		m.setError(errors.New("please choose an input file"))
		return m, nil
	}
	if out == "" {
		m.setError(errors.New("please choose an output file"))
		return m, nil
	}

	m.setStatus("Working…")
	return m, func() tea.Msg {
		return fileDoneMsg{out: out, err: filex.ProcessFile(in, out, mode, shift)}
	}
}

func (m *Model) bruteForce() {
	if m.tab != TabText {
		m.setError(errors.New("brute force works on the Text tab"))
		return
	}

	var b strings.Builder
	for s, c := range caesar.BruteForce(m.text.Value()) {
		fmt.Fprintf(&b, "%2d  %s\n", s, c)
	}
	m.output = strings.TrimSuffix(b.String(), "\n")
	m.setStatus("Brute force: 26 candidates")
}

func (m Model) View() string {
	st := m.styles

	var tabs []string
	for _, t := range []Tab{TabText, TabFile} {
		style := st.inactiveTab
		if t == m.tab {
			style = st.activeTab
		}
		tabs = append(tabs, style.Render(t.String()))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(st.label.Render("Shift: ") + m.shift.View() + "\n\n")

	if m.tab == TabText {
		b.WriteString(st.label.Render("Input") + "\n")
		b.WriteString(m.text.View() + "\n\n")
		b.WriteString(st.label.Render("Output") + "\n")
		b.WriteString(st.output.Width(max(20, m.width-4)).Render(m.output) + "\n")
	} else {
		b.WriteString(st.label.Render("Input file:  ") + m.inPath.View() + "\n")
		b.WriteString(st.label.Render("Output file: ") + m.outPath.View() + "\n")
	}

	if m.status != "" {
		style := st.statusOK
		if m.statusErr {
			style = st.statusErr
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	b.WriteString("\n" + st.help.Render("tab focus • ctrl+t switch tab • ctrl+e encrypt • ctrl+d decrypt • ctrl+b brute force • esc quit"))
	return b.String()
}

// Output returns the current content of the output pane.
func (m Model) Output() string { return m.output }

// Status returns the status line and whether it reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }
