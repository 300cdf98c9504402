package main

import (
	"fmt"
	"os"

	"github.com/Mshel/sshtetris/internal/game"
	"github.com/Mshel/sshtetris/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	// The alt screen owns stdout, so logs go to a file when one is given.
	if path := os.Getenv("SSHTETRIS_LOG_FILE"); path != "" {
		f, err := tea.LogToFile(path, "sshtetris")
		if err != nil {
			fmt.Printf("error %v", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	cfg, err := game.LoadConfigFromEnv()
	if err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
	playerManager, err := game.NewPlayerManager(cfg)
	if err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}

	// The first WindowSizeMsg fills in the screen size.
	p := tea.NewProgram(ui.NewControllerModel(playerManager, nil, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
