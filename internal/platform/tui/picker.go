package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-demos/internal/config"
	"github.com/vovakirdan/arcade-demos/internal/core"
	"github.com/vovakirdan/arcade-demos/internal/games/maze"
)

// PickerModel lets users choose one option before a demo starts,
// such as a maze level or a difficulty preset.
type PickerModel struct {
	title     string
	prompt    string
	options   []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    int // -1 while still choosing
	quitting  bool
	back      bool
}

// NewPickerModel creates a picker over options.
func NewPickerModel(title, prompt string, options []string, width, height int) PickerModel {
	return PickerModel{
		title:     title,
		prompt:    prompt,
		options:   options,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		chosen:    -1,
	}
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.options) > 0 {
			m.chosen = m.cursor
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the option list.
func (m PickerModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.prompt, m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, opt)
		if i == m.cursor {
			line = menuCursorStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Chosen returns the 0-based index of the selected option, or -1.
func (m PickerModel) Chosen() int {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PickerModel) WantsBack() bool {
	return m.back
}

// RunPicker runs a picker and returns the chosen index, or -1 when the
// user backed out or quit.
func RunPicker(title, prompt string, options []string, cfg core.RuntimeConfig) (int, error) {
	p := tea.NewProgram(
		NewPickerModel(title, prompt, options, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return -1, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return -1, nil
	}
	return m.Chosen(), nil
}

// RunMazeLevelSelector asks for a start level and applies it.
// Returns false if the user backed out.
func RunMazeLevelSelector(cfg core.RuntimeConfig) (bool, error) {
	idx, err := RunPicker("M A Z E", "Select start level:", maze.LevelNames(), cfg)
	if err != nil || idx < 0 {
		return false, err
	}
	maze.SetStartLevel(idx + 1)
	return true, nil
}

// difficultyOptions lists the presets in picker order.
var difficultyOptions = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// RunDifficultySelector asks for a difficulty preset.
// Returns "" if the user backed out.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (config.DifficultyPreset, error) {
	names := make([]string, len(difficultyOptions))
	for i, p := range difficultyOptions {
		names[i] = string(p)
	}
	idx, err := RunPicker(title, "Select difficulty:", names, cfg)
	if err != nil || idx < 0 {
		return "", err
	}
	return difficultyOptions[idx], nil
}
