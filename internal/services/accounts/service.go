package accounts

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"acctkeep/internal/domain"
)

// DefaultKey is the key the account list is stored under.
const DefaultKey = "accounts"

// Service holds the account list and keeps kv in sync with it.
type Service struct {
	kv     domain.KVStore
	key    string
	logger *zap.Logger

	resetOnMalformed bool

	mu       sync.Mutex
	accounts []domain.Account
	version  uint64

	lmu       sync.Mutex
	listeners []*listener
}

// listener remembers the newest list version it was handed, so a delivery
// that lost a race with a later mutation is dropped.
type listener struct {
	fn   func([]domain.Account)
	seen uint64
}

// Option configures a Service.
type Option func(*Service)

// WithKey stores the list under key instead of DefaultKey.
func WithKey(key string) Option {
	return func(s *Service) { s.key = key }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithResetOnMalformed makes New start from an empty list, with a warning,
// when the stored value cannot be decoded. By default New fails instead.
func WithResetOnMalformed(reset bool) Option {
	return func(s *Service) { s.resetOnMalformed = reset }
}

// New loads the stored account list from kv. An absent key yields an empty
// list. New never writes to kv.
func New(kv domain.KVStore, opts ...Option) (*Service, error) {
	s := &Service{
		kv:     kv,
		key:    DefaultKey,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	accounts, err := s.load()
	if err != nil {
		return nil, err
	}
	s.accounts = accounts
	s.logger.Debug("Loaded accounts", zap.String("key", s.key), zap.Int("count", len(accounts)))
	return s, nil
}

func (s *Service) load() ([]domain.Account, error) {
	raw, ok, err := s.kv.Read(s.key)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", s.key, err)
	}
	if !ok {
		return []domain.Account{}, nil
	}

	accounts, err := decodeAccounts(raw)
	if err == nil {
		return accounts, nil
	}
	if !s.resetOnMalformed {
		return nil, err
	}
	s.logger.Warn("Discarding malformed stored accounts", zap.String("key", s.key), zap.Error(err))
	return []domain.Account{}, nil
}

// Accounts returns a snapshot of the list. Changing the snapshot does not
// affect the store.
func (s *Service) Accounts() []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.accounts)
}

// Len returns the number of accounts.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.accounts)
}

// Get returns a copy of the account at index.
func (s *Service) Get(index int) (domain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.accounts) {
		return domain.Account{}, false
	}
	return s.accounts[index].Clone(), true
}

// AddAccount appends account to the end of the list and persists the list.
func (s *Service) AddAccount(account domain.Account) error {
	s.mu.Lock()
	s.accounts = append(s.accounts, normalize(account))
	err := s.save()
	ver, snap := s.commit()
	s.mu.Unlock()

	s.logger.Debug("Added account",
		zap.Int64("id", account.ID),
		zap.Int("index", len(snap)-1),
		zap.Error(err))
	s.notify(ver, snap)
	return err
}

// UpdateAccount replaces the account at index and persists the list.
// An index outside the list is reported as domain.ErrIndexOutOfRange and
// leaves both the list and the store untouched.
func (s *Service) UpdateAccount(index int, account domain.Account) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.accounts) {
		n := len(s.accounts)
		s.mu.Unlock()
		return fmt.Errorf("update %d of %d: %w", index, n, domain.ErrIndexOutOfRange)
	}
	s.accounts[index] = normalize(account)
	err := s.save()
	ver, snap := s.commit()
	s.mu.Unlock()

	s.logger.Debug("Updated account",
		zap.Int64("id", account.ID),
		zap.Int("index", index),
		zap.Error(err))
	s.notify(ver, snap)
	return err
}

// RemoveAccount deletes the account at index; later accounts move down one
// position. An index outside the list removes nothing, but the list is still
// persisted.
func (s *Service) RemoveAccount(index int) error {
	s.mu.Lock()
	removed := index >= 0 && index < len(s.accounts)
	if removed {
		// slices.Delete zeroes the vacated tail slot.
		s.accounts = slices.Delete(s.accounts, index, index+1)
	}
	err := s.save()
	ver, snap := s.commit()
	s.mu.Unlock()

	s.logger.Debug("Removed account",
		zap.Int("index", index),
		zap.Bool("removed", removed),
		zap.Error(err))
	s.notify(ver, snap)
	return err
}

// Subscribe registers fn to receive a snapshot of the list after every
// mutation. fn runs on the mutating goroutine once the store lock is
// released, and may itself mutate the store. Listeners are called in
// subscription order and never receive a snapshot older than one they have
// already seen. Concurrent mutations may call fn from several goroutines at
// once. Call cancel to stop receiving updates.
func (s *Service) Subscribe(fn func([]domain.Account)) (cancel func()) {
	l := &listener{fn: fn}

	s.lmu.Lock()
	s.listeners = append(s.listeners, l)
	s.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.lmu.Lock()
			s.listeners = slices.DeleteFunc(s.listeners, func(x *listener) bool { return x == l })
			s.lmu.Unlock()
		})
	}
}

// save writes the whole list under the store key. Callers hold s.mu.
func (s *Service) save() error {
	raw, err := encodeAccounts(s.accounts)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	if err := s.kv.Write(s.key, raw); err != nil {
		return fmt.Errorf("%w: write %q: %w", domain.ErrPersist, s.key, err)
	}
	return nil
}

// commit stamps the current list with a new version. Callers hold s.mu.
func (s *Service) commit() (uint64, []domain.Account) {
	s.version++
	return s.version, snapshot(s.accounts)
}

func (s *Service) notify(ver uint64, snap []domain.Account) {
	s.lmu.Lock()
	ls := slices.Clone(s.listeners)
	s.lmu.Unlock()

	for _, l := range ls {
		s.lmu.Lock()
		stale := l.seen >= ver
		if !stale {
			l.seen = ver
		}
		s.lmu.Unlock()
		if stale {
			continue
		}
		l.fn(snapshot(snap))
	}
}

// normalize copies a with invalid UTF-8 in its strings replaced by U+FFFD.
// The JSON encoder would otherwise rewrite those bytes on save and the stored
// list would no longer match the in-memory one.
func normalize(a domain.Account) domain.Account {
	out := a.Clone()
	out.Login = validUTF8(out.Login)
	out.Type = domain.AccountType(validUTF8(string(out.Type)))
	for i := range out.Label {
		out.Label[i].Text = validUTF8(out.Label[i].Text)
	}
	if out.Password != nil {
		*out.Password = validUTF8(*out.Password)
	}
	return out
}

func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func snapshot(in []domain.Account) []domain.Account {
	out := make([]domain.Account, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

func encodeAccounts(accounts []domain.Account) (string, error) {
	b, err := json.Marshal(accounts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeAccounts(raw string) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	if accounts == nil {
		// A stored "null" decodes to a nil slice.
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// Compile-time assertion that Service implements domain.AccountStore.
var _ domain.AccountStore = (*Service)(nil)
