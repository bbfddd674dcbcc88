package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultNotesMaxLen = 500

func newCheckInCmd(a *App) *cobra.Command {
	var mood, energy, stress int
	var notes, date string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's mood, energy and stress",
		Long: `Record a daily check-in. Each metric is 0-100. Checking in again on the
same day replaces that day's entry.

Run without flags in a terminal to fill in a form.

Examples:
  checkin --mood 60 --energy 45 --stress 70
  checkin --mood 80 --energy 70 --stress 20 --notes "Closed the seed round"
  checkin --mood 50 --energy 50 --stress 50 --date 2026-10-14`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			metricsGiven := flags.Changed("mood") || flags.Changed("energy") || flags.Changed("stress")
			switch {
			case metricsGiven:
				var missing []string
				for _, name := range []string{"mood", "energy", "stress"} {
					if !flags.Changed(name) {
						missing = append(missing, "--"+name)
					}
				}
				if len(missing) > 0 {
					return fmt.Errorf("missing %s", strings.Join(missing, ", "))
				}
			case a.interactive():
				limit := a.NotesMaxLen
				if limit <= 0 {
					limit = defaultNotesMaxLen
				}
				fields := checkInFields{notes: notes}
				if err := wizardCheckIn(limit, &fields).Run(); err != nil {
					return err
				}
				mood, _ = strconv.Atoi(fields.mood)
				energy, _ = strconv.Atoi(fields.energy)
				stress, _ = strconv.Atoi(fields.stress)
				notes = fields.notes
			default:
				return fmt.Errorf("--mood, --energy and --stress are required when not running in a terminal")
			}

			entry, err := a.CheckIns.Submit(cmd.Context(), app.CheckInRequest{
				UserID: userID,
				Date:   date,
				Mood:   mood,
				Energy: energy,
				Stress: stress,
				Notes:  notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckIn(entry))
			return nil
		},
	}

	cmd.Flags().IntVar(&mood, "mood", 0, "Mood 0-100 (higher is better)")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy 0-100 (higher is better)")
	cmd.Flags().IntVar(&stress, "stress", 0, "Stress 0-100 (higher is worse)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional free-text notes")
	cmd.Flags().StringVar(&date, "date", "", "Entry date YYYY-MM-DD (default today)")

	cmd.AddCommand(newCheckInHistoryCmd(a))
	return cmd
}

func newCheckInHistoryCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent check-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}
			entries, err := a.CheckIns.History(cmd.Context(), userID, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckInHistory(entries, a.today()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 14, "Number of entries to show")
	return cmd
}

func newTrendsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Show mood, energy and stress trends over the recent window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}
			trends, err := a.CheckIns.Trends(cmd.Context(), userID, nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrends(trends))
			return nil
		},
	}
}
