package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [index]",
		Aliases: []string{"rm"},
		Short:   "Delete the account at index",
		Long: `Delete the account at index. Later accounts move down one position.

An index past the end of the list, or a negative index, removes nothing.
Pass negative numbers after "--" so they are not read as flags:

  acctkeep remove -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			before := wire.Accounts.Len()
			if err := wire.Accounts.RemoveAccount(index); err != nil {
				return err
			}
			if wire.Accounts.Len() == before {
				fmt.Fprintf(cmd.OutOrStdout(), "No account at index %d\n", index)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed account at index %d\n", index)
			return nil
		},
	}
}
