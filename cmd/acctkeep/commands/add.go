package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"acctkeep/internal/domain"
)

func addCmd() *cobra.Command {
	var f accountFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an account to the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.apply(cmd, domain.Account{Label: []domain.Label{}})
			if err != nil {
				return err
			}
			if err := wire.Accounts.AddAccount(a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added account %d at index %d\n", a.ID, wire.Accounts.Len()-1)
			return nil
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("login")
	return cmd
}
