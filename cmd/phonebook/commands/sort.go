package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

func sortCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "sort name|phone",
		Short:     "Reorder the stored directory and save it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{contact.SortByName.String(), contact.SortByPhone.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := contact.ParseSortField(args[0])
			if err != nil {
				return err
			}

			sess, err := opts.session()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			store, err := sess.store(ctx)
			if err != nil {
				return err
			}
			store.Sort(ctx, field)
			if err := store.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sorted %d contacts by %s\n", store.Len(), field)
			return nil
		},
	}
}
