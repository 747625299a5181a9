package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"chosenoffset.com/sonarsweep/internal/storage"
)

var (
	flagLimit int
	flagCopy  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best times and the win/loss tally",
	Long: `Display the fastest winning rounds for the configured board and
how many rounds were won and lost.

Examples:
  sonarsweep scores
  sonarsweep scores --limit 5 --copy`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of best times to show")
	scoresCmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the table to the clipboard")
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening round history: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	best, err := store.BestTimes(ctx, cfg.Board.Size, cfg.Board.Mines, flagLimit)
	if err != nil {
		return err
	}
	tally, err := store.Tally(ctx)
	if err != nil {
		return err
	}

	board := fmt.Sprintf("%dx%d, %d mines", cfg.Board.Size, cfg.Board.Size, cfg.Board.Mines)
	fmt.Fprintln(cmd.OutOrStdout(), formatScores(board, best, tally, true))

	if flagCopy {
		if err := clipboard.WriteAll(formatScores(board, best, tally, false)); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Copied to clipboard."))
	}
	return nil
}

// formatScores renders the best times and tally. Plain output carries no
// terminal styling.
func formatScores(board string, best []storage.Round, tally storage.Tally, styled bool) string {
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(style(titleStyle, "Best Times - "+board))
	b.WriteString("\n\n")

	if len(best) == 0 {
		b.WriteString("No wins recorded yet.\n")
	} else {
		b.WriteString(style(headerStyle, fmt.Sprintf("  %-4s  %-8s  %s", "Rank", "Time", "Date")))
		b.WriteString("\n")
		for i, r := range best {
			line := fmt.Sprintf("  %-4d  %-8s  %s", i+1, fmt.Sprintf("%.1fs", r.Elapsed), r.FinishedAt.Format("2006-01-02 15:04"))
			if i == 0 {
				line = style(bestStyle, line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("Won %d, lost %d", tally.Wins, tally.Losses)
	if tally.Total() > 0 {
		summary += fmt.Sprintf(" (%.0f%%)", 100*float64(tally.Wins)/float64(tally.Total()))
	}
	b.WriteString(style(mutedStyle, summary))
	return b.String()
}
