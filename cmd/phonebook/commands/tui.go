package commands

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/phonebook/internal/adapters/tui"
)

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit the directory in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			store, err := sess.liveStore(ctx)
			if err != nil {
				return err
			}

			stopAutosave := startAutosave(ctx, sess)
			defer stopAutosave()

			var programOpts []tea.ProgramOption
			if isTerminal() {
				programOpts = append(programOpts, tea.WithAltScreen())
			}

			err = tui.Run(ctx, tui.New(ctx, store, sess.logger), programOpts...)
			if ctx.Err() != nil {
				// Terminated by a signal; the model never got to save on quit.
				return store.Save(context.WithoutCancel(ctx))
			}
			return err
		},
	}
}

// isTerminal reports whether stdin is a terminal.
func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
