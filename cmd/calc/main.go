package main

import (
	"fmt"
	"os"

	"gadgets/app/calcapp"
	"gadgets/internal/buildinfo"
	"gadgets/internal/config"
	"gadgets/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}

func run() error {
	win, err := config.ParseWindow("CALC_")
	if err != nil {
		return err
	}
	if err := ui.Available(); err != nil {
		return err
	}
	return ui.Run(ui.Config{
		Title:  "Calculator (" + buildinfo.Short() + ")",
		Width:  calcapp.Width,
		Height: calcapp.Height,
		Scale:  win.Scale,
		TPS:    win.TPS,
	}, calcapp.New())
}
