package main

import (
	"fmt"
	"strconv"

	"github.com/GOPIVARDHAN1965/resumes/internal/store"
	"github.com/spf13/cobra"
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome <application-id> <interview|offer|rejected>",
	Short: "Record the outcome of a tracked application",
	Long: `Outcome marks a tracked application as interview, offer, or rejected.
Interview and offer outcomes boost the performance counters of every
bullet used in that application, which raises their scores in future
generations.`,
	Args: cobra.ExactArgs(2),
	RunE: runOutcome,
}

func init() {
	rootCmd.AddCommand(outcomeCmd)
}

func runOutcome(cmd *cobra.Command, args []string) error {
	appID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid application id %q", args[0])
	}

	outcome := args[1]
	switch outcome {
	case store.OutcomeInterview, store.OutcomeOffer, store.OutcomeRejected:
	default:
		return fmt.Errorf("unknown outcome %q, want interview, offer, or rejected", outcome)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.UpdateApplicationOutcome(cmd.Context(), appID, outcome); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Application %d marked %s\n", appID, outcome)
	return nil
}
