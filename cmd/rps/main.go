package main

import (
	"fmt"
	"os"

	"gadgets/app/rpsapp"
	"gadgets/internal/buildinfo"
	"gadgets/internal/config"
	"gadgets/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rps:", err)
		os.Exit(1)
	}
}

func run() error {
	win, err := config.ParseWindow("RPS_")
	if err != nil {
		return err
	}
	// The display check runs before any game state exists so a missing
	// toolkit backend is a clean startup failure.
	if err := ui.Available(); err != nil {
		return err
	}
	return ui.Run(ui.Config{
		Title:  "Rock-Paper-Scissors (" + buildinfo.Short() + ")",
		Width:  rpsapp.Width,
		Height: rpsapp.Height,
		Scale:  win.Scale,
		TPS:    win.TPS,
	}, rpsapp.New(nil))
}
