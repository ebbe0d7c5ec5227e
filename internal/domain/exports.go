package domain

import (
	interfaces "acctkeep/internal/domain/interfaces"
	types "acctkeep/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Account     = types.Account
	Label       = types.Label
	AccountType = types.AccountType
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KVStore      = interfaces.KVStore
	AccountStore = interfaces.AccountStore
)

const (
	AccountTypeLDAP  = types.AccountTypeLDAP
	AccountTypeLocal = types.AccountTypeLocal
)

var (
	Labels           = types.Labels
	Password         = types.Password
	ParseAccountType = types.ParseAccountType
)
