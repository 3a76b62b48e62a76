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
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusWidth = 30

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput      textinput.Model
	outputViewport viewport.Model

	shell *Shell

	// State
	transcript []string
	recall     []string // previously entered lines, oldest first
	recallIdx  int
	lastErr    error

	styles *Styles

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	WarningMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles builds the styles from the detected color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		WarningMessage: lipgloss.NewStyle().
			Foreground(scheme.Warning),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

func InitialModel(shell *Shell) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command, e.g. list or sell 3 2 (help for more)"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent("Welcome to pharmadex. Type help to list commands.\n\nTip: " + GetRandomTip())

	return Model{
		textInput:      ti,
		outputViewport: vp,
		shell:          shell,
		styles:         NewStyles(),
	}
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
			return m.submit()
		case "up":
			m.recallStep(-1)
			return m, nil
		case "down":
			m.recallStep(1)
			return m, nil
		case "pgup", "pgdown":
			m.outputViewport, cmd = m.outputViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// submit runs the current line through the shell and appends the result
// to the transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()
	if line == "" {
		return m, nil
	}
	m.recall = append(m.recall, line)
	m.recallIdx = len(m.recall)

	out, err := m.shell.Execute(line)
	if errors.Is(err, ErrQuit) {
		return m, tea.Quit
	}
	m.lastErr = err

	entry := m.styles.InputPrompt.Render("> " + line)
	if err != nil {
		entry += "\n" + m.styles.ErrorMessage.Render(err.Error())
	} else if out != "" {
		entry += "\n" + out
	}
	m.transcript = append(m.transcript, entry)
	m.outputViewport.SetContent(strings.Join(m.transcript, "\n\n"))
	m.outputViewport.GotoBottom()
	return m, nil
}

func (m *Model) recallStep(delta int) {
	if len(m.recall) == 0 {
		return
	}
	m.recallIdx = max(0, min(len(m.recall), m.recallIdx+delta))
	if m.recallIdx == len(m.recall) {
		m.textInput.SetValue("")
		return
	}
	m.textInput.SetValue(m.recall[m.recallIdx])
	m.textInput.CursorEnd()
}

func (m *Model) updateLayout() {
	outputWidth := m.width - statusWidth - 6
	outputHeight := m.height - 8
	if outputWidth < 10 {
		outputWidth = 10
	}
	if outputHeight < 3 {
		outputHeight = 3
	}
	m.outputViewport.Width = outputWidth
	m.outputViewport.Height = outputHeight
	m.textInput.Width = m.width - 8
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 50 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	output := m.styles.BorderBlurred.
		Width(m.outputViewport.Width).
		Render(m.styles.Title.Render("Output") + "\n" + m.outputViewport.View())

	status := m.styles.BorderBlurred.
		Width(statusWidth).
		Height(m.outputViewport.Height + 1).
		Render(m.styles.Title.Render("Pharmacy") + "\n" + m.renderStatus())

	input := m.styles.BorderFocused.
		Width(m.width - 4).
		Render(m.textInput.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, output, status),
		input,
		m.renderHelp(),
	)
}

// renderStatus summarises the four containers behind the shell.
func (m Model) renderStatus() string {
	inv := m.shell.inv
	next := "nobody"
	if turn, err := inv.NextTurn(); err == nil {
		next = fmt.Sprintf("#%d %s", turn.Number, turn.Customer)
	}

	low := len(inv.LowStock())
	lines := []string{
		fmt.Sprintf("Products:   %d", inv.ProductCount()),
		fmt.Sprintf("Low stock:  %d", low),
		fmt.Sprintf("Sales:      %d", len(inv.Sales())),
		fmt.Sprintf("Waiting:    %d", len(inv.Turns())),
		fmt.Sprintf("Next:       %s", next),
		fmt.Sprintf("Undo depth: %d", len(inv.Actions())),
		fmt.Sprintf("Cards:      %d cached", m.shell.cards.Cached()),
	}
	if low > 0 {
		lines = append(lines, "", m.styles.WarningMessage.Render(fmt.Sprintf("%d to reorder (see low)", low)))
	}
	if m.lastErr != nil {
		lines = append(lines, "", m.styles.ErrorMessage.Render("last command failed"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"enter", "run"},
		{"↑/↓", "recall"},
		{"pgup/pgdn", "scroll"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	return " " + strings.Join(parts, "  •  ")
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(shell *Shell) error {
	program := tea.NewProgram(
		InitialModel(shell),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
