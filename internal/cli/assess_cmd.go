package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/cli/formatter"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/repository"
	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	var answersFlag string

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Take the 25-question founder assessment",
		Long: `Answer the founder questionnaire and get your psychological profile and archetype.

In a terminal the questions are shown as a form. Otherwise pass all 25
answers as levels 1-4, in question order.

Examples:
  assess
  assess --answers 2,3,1,4,2,2,3,1,1,2,4,3,2,2,1,3,3,2,4,3,3,4,1,2,3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.user()
			if err != nil {
				return err
			}

			var answers []domain.AnswerLevel
			switch {
			case answersFlag != "":
				if answers, err = parseAnswers(answersFlag); err != nil {
					return err
				}
			case app.interactive() && len(app.Questions) > 0:
				levels := make([]int, len(app.Questions))
				if err := wizardQuestionnaire(app.Questions, levels).Run(); err != nil {
					return err
				}
				for _, l := range levels {
					answers = append(answers, domain.AnswerLevel(l))
				}
			default:
				return fmt.Errorf("--answers is required when not running in a terminal")
			}

			res, err := app.Assessments.Submit(cmd.Context(), userID, answers)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAssessment(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFlag, "answers", "", "Comma-separated answer levels (1-4), one per question")
	cmd.AddCommand(newAssessShowCmd(app))
	return cmd
}

func newAssessShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your latest assessment result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.user()
			if err != nil {
				return err
			}
			res, err := app.Assessments.Latest(cmd.Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No assessment yet. Run `founderpulse assess` to take it."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAssessment(res))
			return nil
		},
	}
}

// parseAnswers reads "1,2,3,..." into answer levels. Range and count checks
// are left to the assessment service.
func parseAnswers(s string) ([]domain.AnswerLevel, error) {
	parts := strings.Split(s, ",")
	answers := make([]domain.AnswerLevel, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i+1, strings.TrimSpace(p))
		}
		answers = append(answers, domain.AnswerLevel(v))
	}
	return answers, nil
}
