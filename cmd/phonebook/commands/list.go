package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

func listCmd(opts *rootOptions) *cobra.Command {
	var (
		query  string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "search"},
		Short:   "Print contacts, optionally filtered and ordered",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var field contact.SortField
			if sortBy != "" {
				f, err := contact.ParseSortField(sortBy)
				if err != nil {
					return err
				}
				field = f
			}

			sess, err := opts.session()
			if err != nil {
				return err
			}
			store, err := sess.store(cmd.Context())
			if err != nil {
				return err
			}

			view := contact.Filter(store.Contacts(), store.Search(query))
			if field != "" {
				contact.Sort(view, field)
			}

			out := cmd.OutOrStdout()
			for _, c := range view {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive substring of name or phone")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "order the output by name or phone")
	return cmd
}
