package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"emojied/internal/clipboard"
	"emojied/internal/eventbus"
	"emojied/internal/interaction"
)

var copyCmd = &cobra.Command{
	Use:   "copy <query|glyph>",
	Short: "Copy the best matching emoji to the clipboard",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCopy,
}

func runCopy(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	a, err := loadApp(bus)
	if err != nil {
		return err
	}
	defer a.Close()

	g, err := a.bestMatch(strings.Join(args, " "))
	if err != nil {
		return err
	}

	var failure error
	bus.Subscribe(eventbus.EventActivationFailed, func(e eventbus.DomainEvent) {
		failure = e.(eventbus.ActivationFailedEvent).Err
	})

	svc := interaction.NewService(clipboard.Default(a.cfg.UI.OSC52), nil, bus)
	defer svc.Close()
	if !svc.Activate(g) {
		return fmt.Errorf("copy %s: %w", g.Char, failure)
	}

	n, _ := svc.Notification()
	fmt.Fprintln(cmd.OutOrStdout(), n.Message)
	return nil
}
