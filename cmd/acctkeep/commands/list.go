package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"acctkeep/internal/domain"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored accounts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printAccounts(cmd.OutOrStdout(), wire.Accounts.Accounts())
			return nil
		},
	}
}

func printAccounts(out io.Writer, list []domain.Account) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No accounts stored.")
		return
	}
	for i, a := range list {
		pw := "-"
		if a.HasPassword() {
			pw = "yes"
		}
		fmt.Fprintf(out, "%d\tid=%d\t%s\t%s\tpassword=%s\t%s\n",
			i, a.ID, a.Type, a.Login, pw, strings.Join(a.LabelTexts(), ", "))
	}
}
