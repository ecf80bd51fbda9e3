package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"emojied/internal/domain"
	"emojied/internal/eventbus"
	"emojied/internal/interaction"
	"emojied/internal/raster"
)

var (
	exportOut    string
	exportSize   int
	exportStdout bool
)

var exportCmd = &cobra.Command{
	Use:   "export <query|glyph>",
	Short: "Save the best matching emoji as a PNG",
	Long:  "Renders the emoji centred on a transparent square and saves it as emoji-<codepoint>.png.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportOut, "out", "o", "", "Output directory (default: export.dir from config)")
	f.IntVar(&exportSize, "size", 0, "Image size in pixels (default: export.size from config)")
	f.BoolVar(&exportStdout, "stdout", false, "Write the PNG to stdout instead of a file")
}

func runExport(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	a, err := loadApp(bus)
	if err != nil {
		return err
	}
	defer a.Close()
	if exportOut != "" {
		a.cfg.Export.Dir = exportOut
	}
	if exportSize > 0 {
		a.cfg.Export.Size = exportSize
	}

	g, err := a.bestMatch(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if exportStdout {
		mem := &raster.MemorySaver{}
		r, err := newRasterizer(a.cfg, mem)
		if err != nil {
			return err
		}
		if _, ok := r.Render(g.Char); !ok {
			return fmt.Errorf("export %s failed", g.Char)
		}
		data, _ := mem.File(raster.Filename(g.Char))
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	r, err := newRasterizer(a.cfg, raster.DirSaver{Dir: a.cfg.Export.Dir})
	if err != nil {
		return err
	}

	var failure error
	bus.Subscribe(eventbus.EventActivationFailed, func(e eventbus.DomainEvent) {
		failure = e.(eventbus.ActivationFailedEvent).Err
	})

	svc := interaction.NewService(nil, r, bus, interaction.WithMode(domain.ModeExport))
	defer svc.Close()
	if !svc.Activate(g) {
		return fmt.Errorf("export %s: %w", g.Char, failure)
	}

	n, _ := svc.Notification()
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", n.Message, raster.Filename(g.Char))
	return nil
}
