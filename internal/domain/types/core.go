package types

import "fmt"

// AccountType selects the authentication mechanism an account represents.
type AccountType string

const (
	// AccountTypeLDAP authenticates against a directory service.
	AccountTypeLDAP AccountType = "LDAP"
	// AccountTypeLocal authenticates with a locally stored credential.
	AccountTypeLocal AccountType = "Local"
)

// String returns the string form of the account type.
func (t AccountType) String() string { return string(t) }

// Known reports whether t is one of the defined account types.
func (t AccountType) Known() bool {
	return t == AccountTypeLDAP || t == AccountTypeLocal
}

// ParseAccountType maps user input to an AccountType. Matching is exact
// except that "ldap" and "local" are accepted in lower case.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "LDAP", "ldap":
		return AccountTypeLDAP, nil
	case "Local", "local":
		return AccountTypeLocal, nil
	}
	return "", fmt.Errorf("unknown account type %q (want LDAP or Local)", s)
}
