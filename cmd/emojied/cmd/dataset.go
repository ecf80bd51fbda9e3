package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"emojied/internal/dataset"
	"emojied/internal/eventbus"
)

var datasetOut string

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Import, export and check emoji datasets",
}

var datasetImportCmd = &cobra.Command{
	Use:   "import <emoji-list.html>",
	Short: "Convert a Unicode emoji-list.html page into a dataset file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetImport,
}

var datasetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active dataset to a .json or .xlsx file",
	Args:  cobra.NoArgs,
	RunE:  runDatasetExport,
}

var datasetCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a dataset file (default: the active dataset)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDatasetCheck,
}

func init() {
	datasetImportCmd.Flags().StringVarP(&datasetOut, "out", "o", "", "Output file (.json or .xlsx)")
	datasetExportCmd.Flags().StringVarP(&datasetOut, "out", "o", "", "Output file (.json or .xlsx)")
	_ = datasetImportCmd.MarkFlagRequired("out")
	_ = datasetExportCmd.MarkFlagRequired("out")

	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetExportCmd)
	datasetCmd.AddCommand(datasetCheckCmd)
}

func runDatasetImport(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	if err := dataset.Save(ds, datasetOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d emojis into %s\n", ds.Len(), datasetOut)
	return nil
}

func runDatasetExport(cmd *cobra.Command, args []string) error {
	a, err := loadApp(eventbus.NullBus{})
	if err != nil {
		return err
	}
	defer a.Close()
	if err := dataset.Save(a.ds, datasetOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d emojis from %s to %s\n", a.ds.Len(), a.ds.Source(), datasetOut)
	return nil
}

func runDatasetCheck(cmd *cobra.Command, args []string) error {
	var (
		ds  *dataset.Dataset
		err error
	)
	if len(args) == 1 {
		ds, err = dataset.Load(args[0])
	} else {
		var a *app
		a, err = loadApp(eventbus.NullBus{})
		if a != nil {
			defer a.Close()
			ds = a.ds
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d emojis\n", ds.Source(), ds.Len())
	return nil
}
