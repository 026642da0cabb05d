// Package ui provides the shared color palette and value rendering
// helpers for the menu and monitor screens.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/weathermon/internal/sensor"
)

// ── Color palette ────────────────────────────────────────────────────

var (
	ColorTitleBg  = lipgloss.Color("17")
	ColorTitleFg  = lipgloss.Color("51")
	ColorBorder   = lipgloss.Color("62")
	ColorHeading  = lipgloss.Color("147")
	ColorLabel    = lipgloss.Color("252")
	ColorValue    = lipgloss.Color("250")
	ColorDim      = lipgloss.Color("240")
	ColorFooterBg = lipgloss.Color("235")
	ColorAccent   = lipgloss.Color("214")
	ColorGood     = lipgloss.Color("78")
	ColorWarn     = lipgloss.Color("220")
	ColorHigh     = lipgloss.Color("208")
	ColorCrit     = lipgloss.Color("196")
)

// StatusColor returns the severity color for an air quality status.
func StatusColor(st sensor.Status) lipgloss.Color {
	switch st {
	case sensor.StatusGood:
		return ColorGood
	case sensor.StatusModerate:
		return ColorWarn
	case sensor.StatusSensitive:
		return ColorHigh
	default:
		return ColorCrit
	}
}

// RenderAQI renders an air quality index with its status label, colored
// by severity. Hazardous-range values are bolded.
func RenderAQI(aqi int, st sensor.Status) string {
	color := StatusColor(st)
	style := lipgloss.NewStyle().Foreground(color)
	if st == sensor.StatusHazardous {
		style = style.Bold(true)
	}
	return style.Render(fmt.Sprintf("%3d  %s", aqi, st))
}

// RenderTemp renders a Celsius temperature with its Fahrenheit
// equivalent.
func RenderTemp(celsius, fahrenheit float64) string {
	main := lipgloss.NewStyle().
		Foreground(ColorValue).
		Bold(true).
		Render(fmt.Sprintf("%.2f°C", celsius))
	alt := lipgloss.NewStyle().
		Foreground(ColorDim).
		Render(fmt.Sprintf("(%.2f°F)", fahrenheit))
	return main + "  " + alt
}

// RenderHumidity renders a relative humidity percentage.
func RenderHumidity(humidity float64) string {
	return lipgloss.NewStyle().
		Foreground(ColorValue).
		Bold(true).
		Render(fmt.Sprintf("%.2f%%", humidity))
}
