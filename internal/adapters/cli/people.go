package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-planfix/internal/adapters/clients/planfix/schema"
)

func newUserCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Read users",
	}

	var fields []string
	get := &cobra.Command{
		Use:   "get <user>",
		Short: `Get a user by id ("1" or "user:1")`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rt.app.Client.GetUser(cmd.Context(), args[0], schema.Fields(fields...))
			if err != nil {
				return err
			}
			return writeJSON(rt.stdout, resp)
		},
	}
	get.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (comma-separated)")

	cmd.AddCommand(get)
	return cmd
}

func newContactCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Read contacts",
	}

	var fields []string
	get := &cobra.Command{
		Use:   "get <contact>",
		Short: `Get a contact by id ("1" or "contact:1")`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := rt.app.Client.GetContact(cmd.Context(), args[0], schema.Fields(fields...))
			if err != nil {
				return err
			}
			return writeJSON(rt.stdout, resp)
		},
	}
	get.Flags().StringSliceVar(&fields, "fields", nil, "fields to return (comma-separated)")

	cmd.AddCommand(get)
	return cmd
}
