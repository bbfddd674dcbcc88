package cli

import (
	"context"
	"fmt"
	"strings"
)

// fullIDLen is the length of a canonical UUID string.
const fullIDLen = 36

// resolveActionID resolves an action identifier which can be:
//   - A full UUID string (passed through directly)
//   - A prefix of one of today's action IDs
func resolveActionID(ctx context.Context, app *App, userID, input string) (string, error) {
	if len(input) >= fullIDLen {
		return input, nil
	}
	items, err := app.Actions.Today(ctx, userID, nil)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, item := range items {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}
	switch len(matches) {
	case 0:
		// Not one of today's; let the service decide.
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("action ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
