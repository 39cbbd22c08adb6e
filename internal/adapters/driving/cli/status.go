package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\x1b[K"

// isTerminal reports whether w is a terminal. Replaced in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// withStatus runs fn while showing msg on stderr. The status line is only
// drawn when stderr is a terminal, so piped output stays clean.
func withStatus[T any](cmd *cobra.Command, msg string, fn func(context.Context) (T, error)) (T, error) {
	w := cmd.ErrOrStderr()
	show := isTerminal(w)
	if show {
		fmt.Fprint(w, cliStyles.Muted.Render(msg))
	}

	v, err := fn(commandContext(cmd))

	if show {
		fmt.Fprint(w, clearLine)
	}
	return v, err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
