package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func updateCmd() *cobra.Command {
	var f accountFlags

	cmd := &cobra.Command{
		Use:   "update [index]",
		Short: "Replace the account at index",
		Long: `Replace the account at index.

Fields whose flags are not given keep their current values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			// A missing index falls through to UpdateAccount, which reports it.
			current, _ := wire.Accounts.Get(index)
			a, err := f.apply(cmd, current)
			if err != nil {
				return err
			}
			if err := wire.Accounts.UpdateAccount(index, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated account at index %d\n", index)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
