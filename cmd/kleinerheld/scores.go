package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kleiner-held/internal/games/hero"
	"github.com/vovakirdan/kleiner-held/internal/platform/tui"
	"github.com/vovakirdan/kleiner-held/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, ranked by score, then level reached,
then the shortest time.

Examples:
  kleinerheld scores
  kleinerheld scores --recent --limit 20
  kleinerheld scores --tui
  kleinerheld scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs interactively")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(hero.GameID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All runs deleted.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, hero.GameID, width, height)
	}

	var runs []storage.RunRecord
	if flagScoresRecent {
		runs, err = store.RecentRuns(hero.GameID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(hero.GameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	stats, err := store.Stats(hero.GameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	printRuns(cmd.OutOrStdout(), gameTitle(), runs, stats)
	return nil
}

func printRuns(out io.Writer, title string, runs []storage.RunRecord, stats *storage.RunStats) {
	fmt.Fprintf(out, "Runs - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'kleinerheld play' to set the first high score!")
		return
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-5s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Kills", "Time", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-5s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-5d  %-5d  %-6s  %-6s  %s\n",
			i+1, r.Score, r.Level, r.Defeated, formatRunTime(r), r.Outcome,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats != nil && stats.Runs > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Victories: %d  Kills: %d\n",
			stats.BestScore, stats.Runs, stats.Victories, stats.TotalKills)
	}
}

func formatRunTime(r storage.RunRecord) string {
	secs := r.DurationMs / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
