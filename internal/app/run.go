// Package app wires the menu and monitor screens into the interactive
// run loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luki/weathermon/internal/config"
	"github.com/luki/weathermon/internal/menu"
	"github.com/luki/weathermon/internal/monitor"
	"github.com/luki/weathermon/internal/store"
)

// Run drives the interactive loop: show the menu, run the chosen
// screen, and return to the menu until the user exits.
func Run(cfg config.Config) error {
	st := store.Open(cfg.DataFile)

	for {
		m := menu.New(st, cfg.Interval)
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		picked := final.(menu.Model)
		switch picked.Choice() {
		case menu.ChoiceMonitor:
			if err := runMonitor(st, picked.Interval()); err != nil {
				return err
			}
		default:
			fmt.Println("Exiting...")
			return nil
		}
	}
}

func runMonitor(st *store.Store, interval time.Duration) error {
	mon := monitor.New(st, interval)
	slog.Info("monitoring started", "interval", mon.Interval().String())

	if _, err := tea.NewProgram(mon, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	slog.Info("monitoring stopped")
	fmt.Println("\nMonitoring stopped by user.")
	return nil
}
