package menu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luki/weathermon/internal/sensor"
	"github.com/luki/weathermon/internal/store"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testMenu(t *testing.T) Model {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "weather_data.json"))
	m := New(st, 5*time.Second)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"", 5 * time.Second},
		{"   ", 5 * time.Second},
		{"abc", 5 * time.Second},
		{"0", 5 * time.Second},
		{"-3", 5 * time.Second},
		{"2.5", 5 * time.Second},
		{"10", 10 * time.Second},
		{" 7 ", 7 * time.Second},
	}

	for _, tt := range tests {
		if got := ParseInterval(tt.input, 5*time.Second); got != tt.want {
			t.Errorf("ParseInterval(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExitChoice(t *testing.T) {
	m := testMenu(t)

	next, cmd := m.Update(keyRunes("3"))
	m = next.(Model)

	if m.Choice() != ChoiceExit {
		t.Errorf("Choice = %v, want ChoiceExit", m.Choice())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestQuitKeyExits(t *testing.T) {
	m := testMenu(t)

	next, cmd := m.Update(keyRunes("q"))
	if next.(Model).Choice() != ChoiceExit {
		t.Error("q should pick ChoiceExit")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestCursorNavigation(t *testing.T) {
	m := testMenu(t)

	next, _ := m.Update(keyRunes("j"))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", m.cursor)
	}

	next, _ = m.Update(keyRunes("j"))
	m = next.(Model)
	next, _ = m.Update(keyRunes("j"))
	m = next.(Model)
	if m.cursor != 2 {
		t.Errorf("cursor should clamp at 2, got %d", m.cursor)
	}

	next, _ = m.Update(keyRunes("k"))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor after k = %d, want 1", m.cursor)
	}
}

func TestInvalidMenuKeyShowsError(t *testing.T) {
	m := testMenu(t)

	next, _ := m.Update(keyRunes("x"))
	m = next.(Model)

	if m.invalid != "x" {
		t.Errorf("invalid = %q, want %q", m.invalid, "x")
	}
	if view := m.View(); !strings.Contains(view, "Invalid choice") {
		t.Errorf("view missing invalid choice notice:\n%s", view)
	}

	// A valid key clears the notice.
	next, _ = m.Update(keyRunes("j"))
	m = next.(Model)
	if m.invalid != "" {
		t.Errorf("invalid not cleared, still %q", m.invalid)
	}
}

func TestMonitorFlowWithTypedInterval(t *testing.T) {
	m := testMenu(t)

	next, _ := m.Update(keyRunes("1"))
	m = next.(Model)
	if m.screen != screenInterval {
		t.Fatalf("screen = %v, want interval prompt", m.screen)
	}

	for _, r := range []string{"1", "2"} {
		next, _ = m.Update(keyRunes(r))
		m = next.(Model)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.Choice() != ChoiceMonitor {
		t.Errorf("Choice = %v, want ChoiceMonitor", m.Choice())
	}
	if m.Interval() != 12*time.Second {
		t.Errorf("Interval = %v, want 12s", m.Interval())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestBlankIntervalUsesFallback(t *testing.T) {
	m := testMenu(t)

	next, _ := m.Update(keyRunes("1"))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.Interval() != 5*time.Second {
		t.Errorf("Interval = %v, want the 5s fallback", m.Interval())
	}
	if m.Choice() != ChoiceMonitor {
		t.Errorf("Choice = %v, want ChoiceMonitor", m.Choice())
	}
}

func TestEscLeavesIntervalPrompt(t *testing.T) {
	m := testMenu(t)

	next, _ := m.Update(keyRunes("1"))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
	if m.Choice() != ChoiceNone {
		t.Errorf("Choice = %v, want ChoiceNone", m.Choice())
	}
}

func TestStatsScreenEmptyHistory(t *testing.T) {
	m := testMenu(t)

	next, _ := m.Update(keyRunes("2"))
	m = next.(Model)

	if m.screen != screenStats {
		t.Fatalf("screen = %v, want stats", m.screen)
	}
	if view := m.View(); !strings.Contains(view, "No data available yet") {
		t.Errorf("view missing empty-history notice:\n%s", view)
	}

	// Any key returns to the menu.
	next, _ = m.Update(keyRunes("a"))
	m = next.(Model)
	if m.screen != screenMenu {
		t.Errorf("screen after key = %v, want menu", m.screen)
	}
}

func TestStatsScreenWithData(t *testing.T) {
	st := store.Open(filepath.Join(t.TempDir(), "weather_data.json"))
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.Local)
	for i, celsius := range []float64{18.0, 26.0} {
		r := sensor.Reading{
			Timestamp:  sensor.Timestamp(base.Add(time.Duration(i) * time.Second)),
			Celsius:    celsius,
			Fahrenheit: sensor.CelsiusToFahrenheit(celsius),
			Humidity:   50,
			AQI:        60,
			Status:     sensor.ClassifyAQI(60),
		}
		if err := st.Append(r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	m := New(st, 5*time.Second)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	next, _ = m.Update(keyRunes("2"))
	m = next.(Model)

	view := m.View()
	for _, want := range []string{
		"Weather Statistics (2 readings)",
		"Temperature (\u00B0C)",
		"Humidity (%)",
		"Air Quality Index",
		"22.00", // temperature average
		"18.00",
		"26.00",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("stats view missing %q:\n%s", want, view)
		}
	}
}

func TestStatsScreenCorruptHistory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weather_data.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := New(store.Open(path), 5*time.Second)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	next, _ = m.Update(keyRunes("2"))
	m = next.(Model)

	if view := m.View(); !strings.Contains(view, "ERROR") {
		t.Errorf("view missing corruption error:\n%s", view)
	}
}
