package interfaces

import domaintypes "acctkeep/internal/domain/types"

// AccountStore owns the ordered account list and keeps it mirrored to a KVStore.
type AccountStore interface {
	Accounts() []domaintypes.Account
	Len() int
	Get(index int) (domaintypes.Account, bool)

	AddAccount(account domaintypes.Account) error
	UpdateAccount(index int, account domaintypes.Account) error
	RemoveAccount(index int) error

	Subscribe(fn func([]domaintypes.Account)) (cancel func())
}
