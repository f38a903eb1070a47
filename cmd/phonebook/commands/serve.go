package commands

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/phonebook/internal/adapters/http"
	"github.com/jsamuelsen11/phonebook/internal/app"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the directory over HTTP until interrupted, then save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), sess)
		},
	}
}

func serve(ctx context.Context, sess *session) error {
	store, err := sess.liveStore(ctx)
	if err != nil {
		return err
	}
	server, err := do.Invoke[*adapthttp.Server](sess.injector)
	if err != nil {
		return err
	}

	stopAutosave := startAutosave(ctx, sess)
	runErr := server.Run(ctx)
	stopAutosave()

	// Save even after a cancelled run; the edits made over HTTP are only in
	// memory until now.
	saveCtx := context.WithoutCancel(ctx)
	if err := store.Save(saveCtx); err != nil {
		sess.logger.ErrorContext(saveCtx, "final save failed", slog.Any("error", err))
		if runErr == nil {
			runErr = err
		}
	}

	sess.logger.InfoContext(saveCtx, "shutdown complete")
	return runErr
}

// startAutosave runs the autosaver in the background when it is enabled and
// returns a function that stops it and waits for it to finish.
func startAutosave(ctx context.Context, sess *session) (stop func()) {
	autosaver, err := do.Invoke[*app.Autosaver](sess.injector)
	if err != nil || !autosaver.Enabled() {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Go(func() {
		autosaver.Run(ctx)
	})

	return func() {
		cancel()
		wg.Wait()
	}
}
