package main

import (
	"fmt"
	"time"

	"github.com/GOPIVARDHAN1965/resumes/internal/trends"
	"github.com/spf13/cobra"
)

var trendsWindowDays int

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show keyword frequencies and emerging keywords",
	Long: `Trends lists the most frequent keywords across every ingested job
description and flags terms that only started appearing recently.`,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().IntVar(&trendsWindowDays, "window", 30, "Recency window in days for emerging keywords")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.KeywordFrequencies(cmd.Context())
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No keywords recorded yet. Run ingest or generate --track first.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-25s %8s  %-12s %-12s\n", "KEYWORD", "COUNT", "FIRST SEEN", "LAST SEEN")
	limit := min(len(stats), 25)
	for _, stat := range stats[:limit] {
		fmt.Fprintf(out, "%-25s %8d  %-12s %-12s\n", stat.Term, stat.Count, stat.FirstSeen, stat.LastSeen)
	}

	cutoff := time.Now().AddDate(0, 0, -trendsWindowDays)
	recent, err := st.KeywordsSince(cmd.Context(), cutoff)
	if err != nil {
		return err
	}
	older, err := st.KeywordsBefore(cmd.Context(), cutoff)
	if err != nil {
		return err
	}

	emerging := trends.Emerging(recent, older)
	if len(emerging) == 0 {
		return nil
	}

	fmt.Fprintf(out, "\nEmerging in the last %d days:\n", trendsWindowDays)
	for _, stat := range emerging {
		fmt.Fprintf(out, "  %-25s %d mentions\n", stat.Term, stat.Count)
	}
	return nil
}
