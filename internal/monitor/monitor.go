// Package monitor implements the live monitoring TUI using BubbleTea:
// one simulated reading per interval, persisted to the JSON history and
// rendered with running session statistics.
package monitor

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luki/weathermon/internal/history"
	"github.com/luki/weathermon/internal/sensor"
	"github.com/luki/weathermon/internal/store"
	"github.com/luki/weathermon/internal/ui"
)

// DefaultInterval applies when the requested interval is missing or not
// positive.
const DefaultInterval = 5 * time.Second

// sessionSize bounds the in-memory ring backing the session statistics.
const sessionSize = 600

// ── Messages ─────────────────────────────────────────────────────────

type tickMsg time.Time

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model for the live monitor.
type Model struct {
	sim       *sensor.Simulator
	store     *store.Store
	interval  time.Duration
	session   *history.History
	current   sensor.Reading
	taken     int
	err       error
	width     int
	height    int
	paused    bool
	startTime time.Time
}

// New creates the initial model for the live monitor. A non-positive
// interval falls back to DefaultInterval.
func New(st *store.Store, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		sim:       sensor.NewSimulator(),
		store:     st,
		interval:  interval,
		session:   history.New(sessionSize),
		startTime: time.Now(),
	}
}

// Interval returns the effective reading interval.
func (m Model) Interval() time.Duration { return m.interval }

// ── Commands ─────────────────────────────────────────────────────────

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ── Init / Update ────────────────────────────────────────────────────

// Init fires an immediate first reading; the rest follow the interval.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if !m.paused {
			m = m.takeReading(time.Time(msg))
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// takeReading runs one monitoring cycle: simulate, track, persist. The
// reading stays on screen even when the disk write fails.
func (m Model) takeReading(now time.Time) Model {
	r := m.sim.Take(now)
	m.current = r
	m.taken++
	m.session.Push(r)

	if err := m.store.Append(r); err != nil {
		m.err = fmt.Errorf("save: %w", err)
		slog.Error("saving reading failed", "path", m.store.Path(), "error", err)
	} else {
		m.err = nil
	}

	slog.Debug("reading taken",
		"temperature_c", r.Celsius,
		"humidity", r.Humidity,
		"aqi", r.AQI,
		"status", r.Status,
	)
	return m
}

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "  Initializing..."
	}

	contentWidth := m.width - 2
	if contentWidth < 48 {
		contentWidth = 48
	}

	var sections []string

	sections = append(sections, m.renderTitleBar(contentWidth))

	if m.err != nil {
		errBox := lipgloss.NewStyle().
			Foreground(ui.ColorCrit).
			Bold(true).
			Width(contentWidth).
			Padding(0, 1).
			Render(fmt.Sprintf(" ERROR: %v", m.err))
		sections = append(sections, errBox)
	}

	if m.taken == 0 {
		waiting := lipgloss.NewStyle().
			Foreground(ui.ColorDim).
			Width(contentWidth).
			Align(lipgloss.Center).
			Padding(2, 0).
			Render("Waiting for the first reading...")
		sections = append(sections, waiting)
	} else {
		sections = append(sections, m.renderReadingPanel(contentWidth))
		if stats, err := m.session.Summarize(); err == nil && stats.Count > 1 {
			sections = append(sections, m.renderSessionPanel(contentWidth, stats))
		}
	}

	sections = append(sections, m.renderFooter(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorTitleFg).
		Render("WEATHER MONITOR")

	dimS := lipgloss.NewStyle().Foreground(ui.ColorDim)

	statusParts := []string{
		dimS.Render(fmt.Sprintf("up %s", fmtDuration(time.Since(m.startTime)))),
		dimS.Render(fmt.Sprintf("every %s", m.interval)),
	}

	if m.taken > 0 {
		statusParts = append(statusParts, dimS.Render(fmt.Sprintf("%d readings", m.taken)))
	}

	if m.paused {
		statusParts = append(statusParts, lipgloss.NewStyle().
			Foreground(ui.ColorCrit).
			Bold(true).
			Render("PAUSED"))
	}

	rec := lipgloss.NewStyle().Foreground(ui.ColorCrit).Render("REC") +
		dimS.Render(" "+m.store.Path())
	statusParts = append(statusParts, rec)

	sep := dimS.Render(" │ ")
	right := strings.Join(statusParts, sep)

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

func (m Model) renderReadingPanel(totalWidth int) string {
	r := m.current

	headS := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorHeading)
	labelS := lipgloss.NewStyle().Foreground(ui.ColorLabel).Width(13)
	tsS := lipgloss.NewStyle().Foreground(ui.ColorDim)

	rows := []string{
		headS.Render("Current Conditions") + "  " +
			tsS.Render(r.Timestamp.Time().Format("2006-01-02 15:04:05")),
		labelS.Render("Temperature") + " " + ui.RenderTemp(r.Celsius, r.Fahrenheit),
		labelS.Render("Humidity") + " " + ui.RenderHumidity(r.Humidity),
		labelS.Render("Air Quality") + " " + ui.RenderAQI(r.AQI, r.Status),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorBorder).
		Padding(0, 1).
		Width(totalWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderSessionPanel(width int, stats history.Summary) string {
	dimS := lipgloss.NewStyle().Foreground(ui.ColorDim)
	valS := lipgloss.NewStyle().Foreground(ui.ColorValue)
	labelS := lipgloss.NewStyle().Foreground(ui.ColorLabel).Width(13)

	line := func(name string, met history.Metric, format string) string {
		return labelS.Render(name) +
			dimS.Render(" avg") + valS.Render(fmt.Sprintf(format, met.Avg)) +
			dimS.Render("  lo") + valS.Render(fmt.Sprintf(format, met.Min)) +
			dimS.Render("  pk") + valS.Render(fmt.Sprintf(format, met.Max))
	}

	rows := []string{
		lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorHeading).
			Render(fmt.Sprintf("This Session (%d readings)", stats.Count)),
		line("Temperature", stats.Temperature, "%7.2f"),
		line("Humidity", stats.Humidity, "%7.2f"),
		line("Air Quality", stats.AQI, "%7.0f"),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorBorder).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(ui.ColorDim)
	keyS := lipgloss.NewStyle().Foreground(ui.ColorLabel)

	keys := dimS.Render("q") + keyS.Render(":stop") +
		dimS.Render("  p") + keyS.Render(":pause")

	return lipgloss.NewStyle().
		Background(ui.ColorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(keys)
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
