package types

// Label is a single display label attached to an account.
type Label struct {
	Text string `json:"text"`
}

// Account is a stored credential profile, either directory-backed (LDAP) or
// local.
//
// A nil Password means no password is stored; directory accounts usually
// prompt for it at use time.
type Account struct {
	ID       int64       `json:"id"`
	Label    []Label     `json:"label"`
	Type     AccountType `json:"type"`
	Login    string      `json:"login"`
	Password *string     `json:"password"`
}

// Clone returns a deep copy of a, so the copy shares no memory with a.
func (a Account) Clone() Account {
	out := a
	if a.Label != nil {
		out.Label = make([]Label, len(a.Label))
		copy(out.Label, a.Label)
	}
	if a.Password != nil {
		pw := *a.Password
		out.Password = &pw
	}
	return out
}

// HasPassword reports whether a password is stored for the account.
func (a Account) HasPassword() bool { return a.Password != nil }

// LabelTexts returns the label texts in order.
func (a Account) LabelTexts() []string {
	out := make([]string, 0, len(a.Label))
	for _, l := range a.Label {
		out = append(out, l.Text)
	}
	return out
}

// Labels builds a label sequence from plain strings.
func Labels(texts ...string) []Label {
	out := make([]Label, 0, len(texts))
	for _, t := range texts {
		out = append(out, Label{Text: t})
	}
	return out
}

// Password returns a pointer to a copy of pw, for filling Account.Password.
func Password(pw string) *string { return &pw }
