package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/alexanderramin/founderpulse/internal/domain"
)

// FormatDailyActions renders a generated or existing batch.
func FormatDailyActions(r *app.GenerateActionsResult) string {
	var b strings.Builder
	b.WriteString(Header("Actions for " + r.Date))
	b.WriteString("\n")
	if !r.Generated {
		b.WriteString(Dim("Already assigned today. Use --regenerate for a fresh set.") + "\n")
	}
	b.WriteString(FormatActionList(r.Actions))
	if r.Failed > 0 {
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render(fmt.Sprintf("%d action(s) could not be saved and were skipped.", r.Failed)))
	}
	return b.String()
}

// FormatActionList renders actions as a checklist.
func FormatActionList(items []*domain.ActionItem) string {
	if len(items) == 0 {
		return Dim("No actions for this day. Run `founderpulse actions` to get today's set.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		check := StyleDim.Render("○")
		text := a.Text
		if a.Completed {
			check = StyleGreen.Render("✔")
			text = Dim(text)
		}
		rows = append(rows, []string{check, TruncID(a.ID), CategoryBadge(a.Category), text})
	}
	return RenderTable([]string{"", "ID", "CATEGORY", "ACTION"}, rows)
}

// FormatCompleted confirms one completed action.
func FormatCompleted(a *domain.ActionItem) string {
	return fmt.Sprintf("%s Done: %s\n", StyleGreen.Render("✔"), a.Text)
}
