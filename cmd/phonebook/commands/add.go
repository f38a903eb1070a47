package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

func addCmd(opts *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add NAME PHONE",
		Short: "Add a contact and save the directory",
		Args:  cobra.ExactArgs(2),
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

			c := contact.New(args[0], args[1], contact.Category(category))
			if err := store.Add(ctx, c); err != nil {
				return err
			}
			if err := store.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", c)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(contact.CategoryMobile),
		"label for the number (Mobile, Home, Work, Other, or any text)")
	return cmd
}
