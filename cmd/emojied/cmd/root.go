package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath  string
	datasetPath string
)

var rootCmd = &cobra.Command{
	Use:   "emojied",
	Short: "Ad-free emoji search for the terminal",
	Long: "Search emoji by name as you type, then copy one to the clipboard or save it as a PNG.\n" +
		"Run without arguments for the interactive picker.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/emojied/config.toml)")
	pf.StringVar(&datasetPath, "dataset", "", "Dataset file (.json, .xlsx or emoji-list .html); overrides the config")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(configCmd)
}
