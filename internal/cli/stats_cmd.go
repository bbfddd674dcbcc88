package cli

import (
	"fmt"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show action completion rate and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}
			stats, err := a.Progress.Stats(cmd.Context(), app.StatsRequest{UserID: userID, WindowDays: days})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Window in days (default from config)")
	return cmd
}
