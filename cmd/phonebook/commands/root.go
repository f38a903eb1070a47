// Package commands implements the phonebook command tree. Every command
// builds its dependencies through a samber/do container from the layered
// configuration; one-shot commands load the directory, apply one change and
// save it back.
package commands

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const profileEnv = "PHONEBOOK_PROFILE"

// rootOptions holds the global flags and the session built from them.
type rootOptions struct {
	profile   string
	configDir string
	data      string

	sess *session
}

// Execute runs the root command with the process arguments.
func Execute() error {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// run executes one command line and releases the session it built, also
// when the command failed.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts := &rootOptions{}

	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if opts.sess != nil {
		err = errors.Join(err, opts.sess.Close(context.WithoutCancel(ctx)))
	}
	return err
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "phonebook",
		Short:         "Keep a small directory of phone contacts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			opts.sess = sess
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv(profileEnv),
		"configuration profile to layer over base.yaml (env "+profileEnv+")")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	root.PersistentFlags().StringVar(&opts.data, "data", "", "contact file (overrides storage.path)")

	root.AddCommand(
		addCmd(opts),
		removeCmd(opts),
		listCmd(opts),
		sortCmd(opts),
		exportCmd(opts),
		serveCmd(opts),
		tuiCmd(opts),
	)
	return root
}

var errNoSession = errors.New("command ran without a session")

// session returns the session built by the root pre-run hook.
func (o *rootOptions) session() (*session, error) {
	if o.sess == nil {
		return nil, errNoSession
	}
	return o.sess, nil
}
