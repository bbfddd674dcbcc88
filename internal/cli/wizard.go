package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/founderpulse/internal/catalog"
	"github.com/alexanderramin/founderpulse/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// questionsPerPage is how many questionnaire prompts share one form page.
const questionsPerPage = 5

// pulseHuhTheme returns a custom huh theme using the formatter's Gruvbox palette.
func pulseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardQuestionnaire builds the paged assessment form. answers must have one
// slot per question; each slot receives the chosen level (1-4).
func wizardQuestionnaire(questions []catalog.Question, answers []int) *huh.Form {
	var groups []*huh.Group
	for start := 0; start < len(questions); start += questionsPerPage {
		end := min(start+questionsPerPage, len(questions))
		fields := make([]huh.Field, 0, end-start)
		for i := start; i < end; i++ {
			q := questions[i]
			opts := make([]huh.Option[int], 0, len(q.Options))
			for level, label := range q.Options {
				opts = append(opts, huh.NewOption(label, level+1))
			}
			fields = append(fields, huh.NewSelect[int]().
				Title(fmt.Sprintf("%d/%d  %s", q.Number, len(questions), q.Prompt)).
				Options(opts...).
				Value(&answers[i]))
		}
		groups = append(groups, huh.NewGroup(fields...))
	}
	return huh.NewForm(groups...).WithTheme(pulseHuhTheme()).WithShowHelp(false)
}

// checkInFields collects the string values of the check-in form.
type checkInFields struct {
	mood, energy, stress, notes string
}

// wizardCheckIn builds the daily check-in form.
func wizardCheckIn(notesMax int, f *checkInFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			metricInput("Mood (0 = awful, 100 = great)", &f.mood),
			metricInput("Energy (0 = drained, 100 = fully charged)", &f.energy),
			metricInput("Stress (0 = calm, 100 = overwhelmed)", &f.stress),
			huh.NewText().
				Title("Notes (optional)").
				CharLimit(notesMax).
				Value(&f.notes),
		),
	).WithTheme(pulseHuhTheme()).WithShowHelp(false)
}

func metricInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("50").
		Value(value).
		Validate(validateMetric)
}

// validateMetric accepts an integer in 0-100.
func validateMetric(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a number from 0 to 100")
	}
	return nil
}
