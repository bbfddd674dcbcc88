package cli

import (
	"fmt"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActionsCmd(a *App) *cobra.Command {
	var regenerate bool

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Get today's recommended actions",
		Long: `Get today's personalized actions. The set is picked once per day from
your archetype, today's burnout risk and the dimensions that need attention;
running the command again shows the same set.

Examples:
  actions
  actions --regenerate
  actions today
  actions done 3f2a9c1e`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}
			res, err := a.Actions.GenerateDaily(cmd.Context(), app.GenerateActionsRequest{
				UserID: userID,
				Force:  regenerate,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDailyActions(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "Discard today's set and pick a new one")
	cmd.AddCommand(
		newActionsTodayCmd(a),
		newActionsDoneCmd(a),
	)
	return cmd
}

func newActionsTodayCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's actions without generating new ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}
			items, err := a.Actions.Today(cmd.Context(), userID, nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActionList(items))
			return nil
		},
	}
}

func newActionsDoneCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <action-id>",
		Short: "Mark an action as completed",
		Long: `Mark an action as completed. The ID can be the full ID or the short
prefix shown by "actions" for one of today's actions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.user()
			if err != nil {
				return err
			}
			id, err := resolveActionID(cmd.Context(), a, userID, args[0])
			if err != nil {
				return err
			}
			item, err := a.Actions.Complete(cmd.Context(), id, userID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCompleted(item))
			return nil
		},
	}
}
