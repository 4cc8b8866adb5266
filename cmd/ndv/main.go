package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/SuperPauly/n8n-m/pkg/config"
	"github.com/SuperPauly/n8n-m/pkg/layout"
	"github.com/SuperPauly/n8n-m/pkg/loader"
	"github.com/SuperPauly/n8n-m/pkg/model"
	"github.com/SuperPauly/n8n-m/pkg/storage"
	"github.com/SuperPauly/n8n-m/pkg/ui"
	"github.com/SuperPauly/n8n-m/pkg/watcher"
)

func main() {
	workflowPath := flag.String("workflow", "", "Workflow file to open (default: workflow.yaml in the current directory)")
	configPath := flag.String("config", filepath.Join(".ndv", "config.yaml"), "Config file")
	storePath := flag.String("store", "", "Panel width database (overrides config)")
	noWatch := flag.Bool("no-watch", false, "Disable live reload of the workflow file")
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: ndv [options]")
		fmt.Println("\nA TUI node detail viewer for workflow files.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("ndv version 0.1.0")
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "ndv needs an interactive terminal")
		os.Exit(1)
	}
	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (cols < 60 || rows < 15) {
		fmt.Fprintf(os.Stderr, "terminal too small (%dx%d); ndv needs at least 60x15\n", cols, rows)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}

	path := *workflowPath
	if path == "" {
		path = loader.DefaultWorkflowFile
	}

	// The width store and the workflow load independently.
	var (
		g  errgroup.Group
		w  *model.Workflow
		db *storage.DB
	)
	g.Go(func() error {
		var err error
		w, err = loader.LoadWorkflowFromFile(path)
		return err
	})
	g.Go(func() error {
		var err error
		db, err = storage.Open(cfg.StorePath)
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Printf("Error starting viewer: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if len(w.Nodes) == 0 {
		fmt.Println("Workflow has no nodes to inspect.")
		os.Exit(0)
	}

	m := ui.NewModel(w, path, cfg, db)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if !*noWatch {
		fw, err := watcher.Watch(path, func() {
			p.Send(ui.FileChangedMsg{})
		})
		if err != nil {
			fmt.Printf("Warning: live reload disabled: %v\n", err)
		} else {
			defer fw.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

// Compile-time check that the sqlite store satisfies the engine's
// persistence seam.
var _ layout.WidthStore = (*storage.DB)(nil)
