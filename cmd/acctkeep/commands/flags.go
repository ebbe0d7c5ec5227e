package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"acctkeep/internal/domain"
)

// accountFlags holds the account fields shared by add and update.
type accountFlags struct {
	id         int64
	labels     []string
	typ        string
	login      string
	password   string
	noPassword bool
}

func (f *accountFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.id, "id", 0, "account id")
	cmd.Flags().StringArrayVarP(&f.labels, "label", "l", nil, "display label (repeatable)")
	cmd.Flags().StringVarP(&f.typ, "type", "t", "", "account type: LDAP or Local")
	cmd.Flags().StringVar(&f.login, "login", "", "login name")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "stored password")
	cmd.Flags().BoolVar(&f.noPassword, "no-password", false, "store no password")
	cmd.MarkFlagsMutuallyExclusive("password", "no-password")
}

// apply overwrites the fields of base whose flags were set on cmd.
func (f *accountFlags) apply(cmd *cobra.Command, base domain.Account) (domain.Account, error) {
	out := base.Clone()
	flags := cmd.Flags()

	if flags.Changed("id") {
		out.ID = f.id
	}
	if flags.Changed("label") {
		out.Label = domain.Labels(f.labels...)
	}
	if flags.Changed("type") {
		t, err := domain.ParseAccountType(f.typ)
		if err != nil {
			return domain.Account{}, err
		}
		out.Type = t
	}
	if flags.Changed("login") {
		out.Login = f.login
	}
	if flags.Changed("password") {
		out.Password = domain.Password(f.password)
	}
	if f.noPassword {
		out.Password = nil
	}
	return out, nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return i, nil
}
