// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the Bubble Tea console state
type Model struct {
	ready bool

	textInput  textinput.Model
	transcript viewport.Model

	session *Session

	// State
	lines       []string
	lastResult  string
	showingHelp bool
	status      string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the console
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	Echo           lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles from the detected color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		Echo: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// InitialModel creates the console model over an existing session
func InitialModel(session *Session) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 42 answer, search 42, print, help..."
	ti.Prompt = "keytree› "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	transcript := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		textInput:       ti,
		transcript:      transcript,
		session:         session,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.lines = append(m.lines, fmt.Sprintf("%d keys loaded. Type help for commands, f1 for the guide.", session.Len()))
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := m.textInput.Value()
			m.textInput.SetValue("")
			if strings.TrimSpace(line) == "exit" || strings.TrimSpace(line) == "quit" {
				return m, tea.Quit
			}
			m.submit(line)
			return m, nil
		case "f1":
			m.toggleHelp()
			return m, nil
		case "ctrl+y":
			if m.lastResult == "" {
				m.status = "nothing to copy yet"
				return m, nil
			}
			if err := copyToClipboard(m.lastResult); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied last result to clipboard"
			}
			return m, nil
		case "pgup":
			m.transcript.LineUp(m.transcript.Height)
			return m, nil
		case "pgdown":
			m.transcript.LineDown(m.transcript.Height)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// submit runs one interpreter line and appends it and its result to the
// transcript.
func (m *Model) submit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.status = ""
	m.showingHelp = false
	m.lines = append(m.lines, m.styles.Echo.Render("› "+line))

	out, err := m.session.Execute(line)
	if err != nil {
		m.lines = append(m.lines, m.styles.ErrorMessage.Render("error: "+err.Error()))
	} else if out != "" {
		m.lines = append(m.lines, out)
		m.lastResult = out
	}
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

// toggleHelp swaps the transcript for the rendered usage guide and back.
func (m *Model) toggleHelp() {
	m.showingHelp = !m.showingHelp
	if !m.showingHelp {
		m.transcript.SetContent(strings.Join(m.lines, "\n"))
		m.transcript.GotoBottom()
		return
	}

	guide := usageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(guide); err == nil {
			guide = rendered
		}
	}
	m.transcript.SetContent(guide)
	m.transcript.GotoTop()
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	m.textInput.Width = m.width - 14
	m.transcript.Width = m.width - 4
	m.transcript.Height = m.height - inputHeight - 6
}

// View renders the console
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	title := " 🌳 Keytree Console\n"
	if m.showingHelp {
		title = " 📖 Keytree Guide (f1 to go back)\n"
	}

	body := m.styles.Border.Width(m.width - 2).Render(m.transcript.View())
	input := m.styles.Border.Width(m.width - 2).Render(m.textInput.View())

	footer := m.renderHelp()
	if m.status != "" {
		footer = m.styles.SuccessMessage.Render(m.status) + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		body,
		input,
		footer,
	)
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "f1", "ctrl+y", "pgup/pgdown", "esc"}
	descs := []string{"run", "guide", "copy result", "scroll", "quit"}

	var parts []string
	for i, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k)+" "+m.styles.HelpDesc.Render(descs[i]))
	}
	return strings.Join(parts, " • ")
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea console
func runBubbleTeaApp(session *Session) error {
	InitializeColors()

	model := InitialModel(session)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
