// Package menu implements the start screen TUI: launch live monitoring,
// view aggregate statistics for the stored history, or exit.
package menu

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/luki/weathermon/internal/history"
	"github.com/luki/weathermon/internal/store"
	"github.com/luki/weathermon/internal/ui"
)

var items = []string{
	"Start Monitoring",
	"View Statistics",
	"Exit",
}

// ── Model ────────────────────────────────────────────────────────────

type screen int

const (
	screenMenu screen = iota
	screenInterval
	screenStats
)

// Choice is the action picked by the user. The caller reads it after
// the menu program exits.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceMonitor
	ChoiceExit
)

// Model is the BubbleTea model for the start menu.
type Model struct {
	store    *store.Store
	screen   screen
	cursor   int
	invalid  string // last rejected menu key, empty when none
	input    textinput.Model
	fallback time.Duration
	choice   Choice
	interval time.Duration
	stats    history.Summary
	statsErr error
	width    int
	height   int
}

// New creates the menu model. The fallback interval applies when the
// interval prompt is left blank or given unusable input.
func New(st *store.Store, fallback time.Duration) Model {
	if fallback <= 0 {
		fallback = 5 * time.Second
	}

	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(int(fallback / time.Second))
	ti.CharLimit = 5
	ti.Width = 8
	ti.Prompt = "> "

	return Model{
		store:    st,
		input:    ti,
		fallback: fallback,
	}
}

// Choice returns the action picked by the user.
func (m Model) Choice() Choice { return m.choice }

// Interval returns the monitoring interval confirmed on the interval
// screen. Only meaningful when Choice is ChoiceMonitor.
func (m Model) Interval() time.Duration { return m.interval }

// ParseInterval interprets interval prompt input as whole seconds.
// Blank, non-numeric, or non-positive input falls back to the default.
func ParseInterval(s string, fallback time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	secs, err := strconv.Atoi(s)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenInterval:
			return m.updateInterval(msg)
		case screenStats:
			return m.updateStats(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.choice = ChoiceExit
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.invalid = ""
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		m.invalid = ""
	case "1", "2", "3":
		m.cursor = int(msg.String()[0] - '1')
		return m.activate(m.cursor)
	case "enter":
		return m.activate(m.cursor)
	default:
		m.invalid = msg.String()
	}
	return m, nil
}

// activate runs the selected menu entry.
func (m Model) activate(idx int) (tea.Model, tea.Cmd) {
	m.invalid = ""
	switch idx {
	case 0:
		m.screen = screenInterval
		m.input.Reset()
		return m, m.input.Focus()
	case 1:
		h, err := m.store.Load()
		if err != nil {
			m.stats, m.statsErr = history.Summary{}, err
			slog.Error("loading history failed", "path", m.store.Path(), "error", err)
		} else {
			m.stats, m.statsErr = h.Summarize()
		}
		m.screen = screenStats
	case 2:
		m.choice = ChoiceExit
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateInterval(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.choice = ChoiceExit
		return m, tea.Quit
	case "esc":
		m.screen = screenMenu
		m.input.Blur()
		return m, nil
	case "enter":
		m.interval = ParseInterval(m.input.Value(), m.fallback)
		m.choice = ChoiceMonitor
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.choice = ChoiceExit
		return m, tea.Quit
	}
	m.screen = screenMenu
	return m, nil
}

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "  Loading..."
	}

	contentWidth := m.width - 2
	if contentWidth < 48 {
		contentWidth = 48
	}

	var sections []string

	sections = append(sections, m.renderTitle(contentWidth))

	switch m.screen {
	case screenMenu:
		sections = append(sections, m.renderMenu(contentWidth))
	case screenInterval:
		sections = append(sections, m.renderInterval(contentWidth))
	case screenStats:
		sections = append(sections, m.renderStats(contentWidth))
	}

	sections = append(sections, m.renderFooter(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorTitleFg).
		Render("WEATHER MONITOR")

	right := lipgloss.NewStyle().
		Foreground(ui.ColorDim).
		Render(m.store.Path())

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Background(ui.ColorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + strings.Repeat(" ", gap) + right)
}

func (m Model) renderMenu(width int) string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorHeading).
		Render("What would you like to do?")

	rows := []string{head, ""}

	for i, item := range items {
		if i == m.cursor {
			marker := lipgloss.NewStyle().Foreground(ui.ColorAccent).Bold(true).Render("❯")
			num := lipgloss.NewStyle().Foreground(ui.ColorAccent).Render(fmt.Sprintf("%d.", i+1))
			label := lipgloss.NewStyle().Foreground(ui.ColorTitleFg).Bold(true).Render(item)
			rows = append(rows, marker+" "+num+" "+label)
			continue
		}
		num := lipgloss.NewStyle().Foreground(ui.ColorDim).Render(fmt.Sprintf("%d.", i+1))
		label := lipgloss.NewStyle().Foreground(ui.ColorLabel).Render(item)
		rows = append(rows, "  "+num+" "+label)
	}

	if m.invalid != "" {
		rows = append(rows, "", lipgloss.NewStyle().
			Foreground(ui.ColorCrit).
			Render(fmt.Sprintf("Invalid choice %q. Use 1-3, arrows, or enter.", m.invalid)))
	}

	return m.panel(width, rows)
}

func (m Model) renderInterval(width int) string {
	rows := []string{
		lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorHeading).
			Render("Reading Interval"),
		"",
		lipgloss.NewStyle().
			Foreground(ui.ColorLabel).
			Render(fmt.Sprintf("Seconds between readings (blank = %d):", int(m.fallback/time.Second))),
		m.input.View(),
		"",
		lipgloss.NewStyle().
			Foreground(ui.ColorDim).
			Render("Anything that is not a positive number uses the default."),
	}

	return m.panel(width, rows)
}

func (m Model) renderStats(width int) string {
	headS := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorHeading)

	if m.statsErr != nil {
		rows := []string{headS.Render("Weather Statistics"), ""}
		if errors.Is(m.statsErr, history.ErrNoData) {
			rows = append(rows, lipgloss.NewStyle().
				Foreground(ui.ColorDim).
				Render("No data available yet. Run monitoring first to collect data."))
		} else {
			rows = append(rows, lipgloss.NewStyle().
				Foreground(ui.ColorCrit).
				Bold(true).
				Render(fmt.Sprintf("ERROR: %v", m.statsErr)))
		}
		return m.panel(width, rows)
	}

	s := m.stats

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorBorder)).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Bold(true).Foreground(ui.ColorHeading)
			}
			if col == 0 {
				return st.Foreground(ui.ColorLabel)
			}
			return st.Foreground(ui.ColorValue).Align(lipgloss.Right)
		}).
		Headers("Metric", "Average", "Min", "Max").
		Row("Temperature (°C)",
			fmt.Sprintf("%.2f", s.Temperature.Avg),
			fmt.Sprintf("%.2f", s.Temperature.Min),
			fmt.Sprintf("%.2f", s.Temperature.Max)).
		Row("Humidity (%)",
			fmt.Sprintf("%.2f", s.Humidity.Avg),
			fmt.Sprintf("%.2f", s.Humidity.Min),
			fmt.Sprintf("%.2f", s.Humidity.Max)).
		Row("Air Quality Index",
			fmt.Sprintf("%.0f", s.AQI.Avg),
			fmt.Sprintf("%.0f", s.AQI.Min),
			fmt.Sprintf("%.0f", s.AQI.Max))

	rows := []string{
		headS.Render(fmt.Sprintf("Weather Statistics (%d readings)", s.Count)),
		tbl.Render(),
	}

	return m.panel(width, rows)
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(ui.ColorDim)
	keyS := lipgloss.NewStyle().Foreground(ui.ColorLabel)

	var keys string
	switch m.screen {
	case screenMenu:
		keys = dimS.Render("1-3") + keyS.Render(":choose") +
			dimS.Render("  j/k") + keyS.Render(":move") +
			dimS.Render("  enter") + keyS.Render(":select") +
			dimS.Render("  q") + keyS.Render(":exit")
	case screenInterval:
		keys = dimS.Render("enter") + keyS.Render(":start") +
			dimS.Render("  esc") + keyS.Render(":back")
	case screenStats:
		keys = dimS.Render("any key") + keyS.Render(":back")
	}

	return lipgloss.NewStyle().
		Background(ui.ColorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(keys)
}

func (m Model) panel(width int, rows []string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorBorder).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
