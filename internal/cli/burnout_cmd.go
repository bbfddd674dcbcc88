package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/cli/formatter"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/spf13/cobra"
)

func newBurnoutCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burnout",
		Short: "Score today's burnout risk from your check-in",
		Long: `Calculate today's burnout score (0-100) and risk level from today's
check-in, your latest assessment and your recent trends.

Each run records a new score.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}
			report, err := a.Burnout.Calculate(cmd.Context(), app.BurnoutRequest{UserID: userID})
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no check-in for today yet; run `founderpulse checkin` first")
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBurnoutReport(report))
			return nil
		},
	}

	cmd.AddCommand(newBurnoutHistoryCmd(a))
	return cmd
}

func newBurnoutHistoryCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent burnout scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}
			scores, err := a.Burnout.History(cmd.Context(), userID, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBurnoutHistory(scores, a.today()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of scores to show")
	return cmd
}
