package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"emojied/internal/clipboard"
	"emojied/internal/dataset"
	"emojied/internal/eventbus"
	"emojied/internal/raster"
	"emojied/internal/ui"
	"emojied/internal/watcher"
)

func runTUI(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	a, err := loadApp(bus)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Printf("Loaded %d emojis from %s", a.ds.Len(), a.ds.Source())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rast, err := newRasterizer(a.cfg, raster.DirSaver{Dir: a.cfg.Export.Dir})
	if err != nil {
		// Copy still works without a font
		log.Printf("PNG export unavailable: %v", err)
	}

	deps := ui.Deps{
		Config:    a.cfg,
		Matcher:   a.matcher,
		Clipboard: clipboard.Default(a.cfg.UI.OSC52),
		Bus:       bus,
	}
	if rast != nil {
		deps.Raster = rast
	}
	model := ui.NewModel(deps)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	if a.cfg.Dataset.Watch && a.cfg.Dataset.Path != "" {
		w, err := watcher.New(0)
		if err != nil {
			log.Printf("Dataset watch disabled: %v", err)
		} else {
			defer w.Stop()
			if err := w.Watch(a.cfg.Dataset.Path, func(path string) {
				ds, err := dataset.Load(path)
				p.Send(ui.DatasetReloaded(path, ds, err))
			}); err != nil {
				log.Printf("Dataset watch disabled: %v", err)
			}
		}
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
