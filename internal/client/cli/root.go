package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	switch {
	case a.account != nil && a.isLoggedIn():
		return fmt.Sprintf("(%s)", a.account.GetDisplayName())
	case a.pendingID != "":
		return "(pending verification)"
	default:
		return ""
	}
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to dailylog CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
