package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"emojied/internal/eventbus"
)

var (
	searchLimit  int
	searchScores bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "List emojis matching a query, best first",
	Long:  "Ranks dataset entries by name against the query. Words are joined with single spaces.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Max results (default: search.result_cap from config)")
	searchCmd.Flags().BoolVar(&searchScores, "scores", false, "Show distance and rank")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := loadApp(eventbus.NullBus{})
	if err != nil {
		return err
	}
	defer a.Close()

	query := strings.Join(args, " ")
	limit := searchLimit
	if limit <= 0 {
		limit = a.cfg.Search.ResultCap
	}

	matches := a.matcher.SearchScored(query)
	if len(matches) == 0 {
		return fmt.Errorf("%w for %q", errNoMatch, query)
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, m := range matches {
		if searchScores {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%.4f\n", m.Glyph.Char, m.Glyph.Name, m.Glyph.Codes, m.Distance, m.Rank)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Glyph.Char, m.Glyph.Name, m.Glyph.Codes)
		}
	}
	return tw.Flush()
}
