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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConsoleSubmit(t *testing.T) {
	m := InitialModel(newTestSession(t))

	for _, line := range []string{"insert 10", "insert 20", "insert 30", "pre"} {
		m.textInput.SetValue(line)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(Model)
	}

	if m.textInput.Value() != "" {
		t.Errorf("input not cleared after enter: %q", m.textInput.Value())
	}
	if m.lastResult != "20 10 30" {
		t.Errorf("lastResult = %q; want %q", m.lastResult, "20 10 30")
	}
	if m.session.Len() != 3 {
		t.Errorf("session has %d keys; want 3", m.session.Len())
	}
}

func TestConsoleShowsErrors(t *testing.T) {
	m := InitialModel(newTestSession(t))
	m.submit("delete banana")

	last := m.lines[len(m.lines)-1]
	if !strings.Contains(last, "error:") {
		t.Errorf("last transcript line = %q; want an error", last)
	}
	if m.lastResult != "" {
		t.Errorf("errors must not become the copyable result, got %q", m.lastResult)
	}
}

func TestConsoleHelpToggle(t *testing.T) {
	m := InitialModel(newTestSession(t))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = next.(Model)
	if !m.showingHelp {
		t.Fatal("f1 did not open the guide")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = next.(Model)
	if m.showingHelp {
		t.Fatal("second f1 did not close the guide")
	}
}

func TestConsoleView(t *testing.T) {
	m := InitialModel(newTestSession(t))
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if !strings.Contains(m.View(), "Keytree Console") {
		t.Errorf("View missing title")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if next == nil {
		t.Fatal("Update returned nil model")
	}
}
