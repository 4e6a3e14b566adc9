package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s, page %d/%d)", a.gate.User().Email, a.view.Page(), a.view.TotalPages())
}

func (a *App) Root(ctx context.Context) {
	printlnFn("User admin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
