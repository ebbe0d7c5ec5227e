package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"acctkeep/internal/domain"
)

const maskedPassword = "********"

func showCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show [index]",
		Short: "Print one account as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			a, ok := wire.Accounts.Get(index)
			if !ok {
				return fmt.Errorf("show %d of %d: %w", index, wire.Accounts.Len(), domain.ErrIndexOutOfRange)
			}
			if a.HasPassword() && !reveal {
				a.Password = domain.Password(maskedPassword)
			}

			b, err := json.MarshalIndent(a, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the stored password")
	return cmd
}
