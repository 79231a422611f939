package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/radialmenu/internal/config"
	"github.com/jask/radialmenu/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// the alt screen owns stdout, so logs go to a file or nowhere
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "radialmenu")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	app := tui.New(cfg)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
	if idx, ok := app.LastPick(); ok {
		fmt.Println(idx)
	}
}
