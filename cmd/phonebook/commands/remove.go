package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

func removeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME [PHONE]",
		Short: "Remove the first contact with the given name (and phone) and save",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			store, err := sess.store(ctx)
			if err != nil {
				return err
			}

			target := findContact(store.Contacts(), args)
			if target == nil {
				return fmt.Errorf("no contact matches %q: %w", args, domain.ErrNotFound)
			}
			store.Remove(ctx, target)
			if err := store.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", target)
			return nil
		},
	}
}

// findContact returns the first contact whose name, and phone when given,
// equal the arguments exactly.
func findContact(contacts []*contact.Contact, args []string) *contact.Contact {
	for _, c := range contacts {
		if c.Name != args[0] {
			continue
		}
		if len(args) > 1 && c.Phone != args[1] {
			continue
		}
		return c
	}
	return nil
}
