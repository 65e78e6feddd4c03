// Command drawerdemo is an interactive terminal demonstration of the
// drawer engine: a pane that can be dragged from the left or right edge
// to reveal a drawer underneath, with physics-driven settling.
package main

import (
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paneworks/drawer"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if os.Getenv("DRAWERDEMO_DEBUG") != "" {
		f, err := os.Create("drawerdemo.log")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
		drawer.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
