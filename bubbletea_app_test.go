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

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestModelRunsCommands(t *testing.T) {
	m := InitialModel(newTestShell(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if !m.ready {
		t.Fatal("model should be ready after a window size message")
	}

	m = typeLine(t, m, "add 1 Aspirin 1.5 2")
	m = typeLine(t, m, "join Ana")
	if len(m.transcript) != 2 {
		t.Fatalf("expected 2 transcript entries, got %d", len(m.transcript))
	}
	if !strings.Contains(m.transcript[0], "Added #1 Aspirin.") {
		t.Errorf("unexpected transcript entry %q", m.transcript[0])
	}
	if m.textInput.Value() != "" {
		t.Errorf("input should be cleared after enter, got %q", m.textInput.Value())
	}

	status := m.renderStatus()
	for _, want := range []string{"Products:   1", "Low stock:  1", "Next:       #1 Ana", "Undo depth: 1", "1 to reorder"} {
		if !strings.Contains(status, want) {
			t.Errorf("expected %q in status:\n%s", want, status)
		}
	}
	if view := m.View(); !strings.Contains(view, "Pharmacy") {
		t.Errorf("view is missing the status panel:\n%s", view)
	}
}

func TestModelRecallAndErrors(t *testing.T) {
	m := InitialModel(newTestShell(t))
	m = typeLine(t, m, "find 42")
	if m.lastErr == nil || !strings.Contains(m.transcript[0], "product not found") {
		t.Errorf("expected the lookup failure in the transcript, got %q", m.transcript)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.textInput.Value() != "find 42" {
		t.Errorf("up should recall the last line, got %q", m.textInput.Value())
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.textInput.Value() != "" {
		t.Errorf("down past the newest line should clear input, got %q", m.textInput.Value())
	}
}

func TestModelQuit(t *testing.T) {
	m := InitialModel(newTestShell(t))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("quit")})
	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should stop the program")
	}
}

func TestStylesFollowColorScheme(t *testing.T) {
	scheme := GetColorScheme()
	styles := NewStyles()
	if styles.WarningMessage.GetForeground() != scheme.Warning {
		t.Errorf("warning style: expected %v, got %v", scheme.Warning, styles.WarningMessage.GetForeground())
	}
	if styles.ErrorMessage.GetForeground() != scheme.Error {
		t.Errorf("error style: expected %v, got %v", scheme.Error, styles.ErrorMessage.GetForeground())
	}
}
