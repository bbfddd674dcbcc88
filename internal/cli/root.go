package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/founderpulse/internal/catalog"
	"github.com/alexanderramin/founderpulse/internal/domain"
	"github.com/alexanderramin/founderpulse/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Assessments service.AssessmentService
	CheckIns    service.CheckInService
	Burnout     service.BurnoutService
	Actions     service.ActionService
	Progress    service.ProgressService

	// Questions drives the interactive questionnaire, in answer order.
	Questions []catalog.Question

	// UserID is the default for --user.
	UserID string
	// Location decides which calendar day is labelled "Today".
	Location *time.Location
	// NotesMaxLen caps the notes field of the check-in form.
	NotesMaxLen int

	// IsInteractive reports whether stdin is a terminal. Forms are only shown
	// when it returns true.
	IsInteractive func() bool

	// Serve runs the HTTP API and scheduler until ctx is cancelled.
	Serve func(ctx context.Context) error

	userID string
}

// NewRootCmd creates the top-level "founderpulse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "founderpulse",
		Short:         "Founder wellness check-ins, burnout scoring and daily actions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.userID, "user", app.UserID, "User ID (defaults to user.id from config)")
	// Read by main before the command tree is built; declared here so cobra
	// accepts them.
	flags.String("config", "", "Path to a founderpulse.yaml config file")
	flags.String("db", "", "Path to the SQLite database")

	root.AddCommand(
		newAssessCmd(app),
		newCheckInCmd(app),
		newTrendsCmd(app),
		newBurnoutCmd(app),
		newActionsCmd(app),
		newStatsCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) user() (string, error) {
	if a.userID == "" {
		return "", fmt.Errorf("no user selected: pass --user or set user.id in the config")
	}
	return a.userID, nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) today() string {
	loc := a.Location
	if loc == nil {
		loc = time.UTC
	}
	return domain.FormatDate(time.Now().In(loc))
}
