package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/phonebook/internal/adapters/export"
	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var (
		out   string
		query string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the directory to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			sess, err := opts.session()
			if err != nil {
				return err
			}
			store, err := sess.store(cmd.Context())
			if err != nil {
				return err
			}
			view := contact.Filter(store.Contacts(), store.Search(query))

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer func() {
				err = errors.Join(err, f.Close())
			}()

			if err := export.WriteXLSX(f, view); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d contacts to %s\n", len(view), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "contacts.xlsx", "workbook to write")
	cmd.Flags().StringVarP(&query, "query", "q", "", "export only contacts matching this search")
	return cmd
}
