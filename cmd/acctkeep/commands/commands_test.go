package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctkeep/internal/app"
	"acctkeep/internal/domain"
)

// run executes the CLI against home and returns everything it printed.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append(args, "--home", home))
	err := root.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, home string, args ...string) string {
	t.Helper()
	out, err := run(t, home, args...)
	require.NoError(t, err, out)
	return out
}

func stored(t *testing.T, home string) []domain.Account {
	t.Helper()
	w, err := app.NewWire(app.DefaultConfig(home), nil)
	require.NoError(t, err)
	defer w.Close()
	return w.Accounts.Accounts()
}

func TestCLI_ListEmpty(t *testing.T) {
	out := mustRun(t, t.TempDir(), "list")
	assert.Contains(t, out, "No accounts stored.")
}

func TestCLI_AddListShow(t *testing.T) {
	home := t.TempDir()

	out := mustRun(t, home, "add", "--id", "1", "--type", "Local", "--login", "bob",
		"--label", "A", "--label", "primary", "--password", "x")
	assert.Contains(t, out, "Added account 1 at index 0")
	mustRun(t, home, "add", "--id", "2", "-t", "ldap", "--login", "uid=alice")

	out = mustRun(t, home, "list")
	assert.Contains(t, out, "0\tid=1\tLocal\tbob\tpassword=yes\tA, primary")
	assert.Contains(t, out, "1\tid=2\tLDAP\tuid=alice\tpassword=-\t")

	out = mustRun(t, home, "show", "0")
	var shown domain.Account
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	require.NotNil(t, shown.Password)
	assert.Equal(t, maskedPassword, *shown.Password)

	out = mustRun(t, home, "show", "0", "--reveal")
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "x", *shown.Password)

	got := stored(t, home)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Account{
		ID:       1,
		Label:    domain.Labels("A", "primary"),
		Type:     domain.AccountTypeLocal,
		Login:    "bob",
		Password: domain.Password("x"),
	}, got[0])
	assert.Nil(t, got[1].Password)
}

func TestCLI_AddRequiresTypeAndLogin(t *testing.T) {
	_, err := run(t, t.TempDir(), "add", "--id", "1")
	assert.Error(t, err)
}

func TestCLI_AddRejectsUnknownType(t *testing.T) {
	_, err := run(t, t.TempDir(), "add", "--type", "kerberos", "--login", "x")
	assert.ErrorContains(t, err, "unknown account type")
}

func TestCLI_UpdateKeepsUnsetFields(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "add", "--id", "1", "--type", "Local", "--login", "bob", "--password", "x")

	mustRun(t, home, "update", "0", "--login", "robert")
	got := stored(t, home)
	require.Len(t, got, 1)
	assert.Equal(t, "robert", got[0].Login)
	assert.Equal(t, int64(1), got[0].ID)
	require.NotNil(t, got[0].Password)
	assert.Equal(t, "x", *got[0].Password)

	mustRun(t, home, "update", "0", "--no-password")
	assert.Nil(t, stored(t, home)[0].Password)
}

func TestCLI_UpdateOutOfRange(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "add", "--type", "Local", "--login", "bob")

	_, err := run(t, home, "update", "3", "--login", "x")
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestCLI_Remove(t *testing.T) {
	home := t.TempDir()
	for _, login := range []string{"a", "b", "c"} {
		mustRun(t, home, "add", "--type", "Local", "--login", login)
	}

	out := mustRun(t, home, "remove", "0")
	assert.Contains(t, out, "Removed account at index 0")

	out = mustRun(t, home, "rm", "5")
	assert.Contains(t, out, "No account at index 5")

	got := stored(t, home)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Login)
	assert.Equal(t, "c", got[1].Login)
}

func TestCLI_BadIndex(t *testing.T) {
	_, err := run(t, t.TempDir(), "remove", "first")
	assert.ErrorContains(t, err, "invalid index")
}

func TestCLI_MalformedStorageFails(t *testing.T) {
	home := t.TempDir()
	w, err := app.NewWire(app.DefaultConfig(home), nil)
	require.NoError(t, err)
	require.NoError(t, w.KV.Write("accounts", "not json"))

	_, err = run(t, home, "list")
	assert.ErrorIs(t, err, domain.ErrMalformedData)
}

func TestCLI_SQLiteBackend(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "add", "--type", "LDAP", "--login", "x", "--backend", "sqlite")

	out := mustRun(t, home, "list", "--backend", "sqlite")
	assert.Contains(t, out, "LDAP\tx")

	// The file backend has its own, still empty, slot.
	out = mustRun(t, home, "list")
	assert.Contains(t, out, "No accounts stored.")
}

func TestCLI_WatchNeedsFileBackend(t *testing.T) {
	_, err := run(t, t.TempDir(), "watch", "--backend", "memory")
	assert.ErrorContains(t, err, "cannot be watched")
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchAccounts_PrintsChanges(t *testing.T) {
	home := t.TempDir()
	cfg := app.DefaultConfig(home)

	watched, err := app.NewWire(cfg, nil)
	require.NoError(t, err)
	defer watched.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- watchAccounts(ctx, watched, &out, ready) }()

	select {
	case <-ready:
	case err := <-done:
		t.Fatalf("watch exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never became ready")
	}

	writer, err := app.NewWire(cfg, nil)
	require.NoError(t, err)
	defer writer.Close()
	require.NoError(t, writer.Accounts.AddAccount(domain.Account{
		ID:    1,
		Type:  domain.AccountTypeLocal,
		Login: "carol",
	}))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "carol")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.True(t, strings.HasPrefix(out.String(), "Watching "))
}

func TestCLI_RemoveNegativeIndexIsNoop(t *testing.T) {
	home := t.TempDir()
	mustRun(t, home, "add", "--type", "Local", "--login", "a")
	mustRun(t, home, "add", "--type", "Local", "--login", "b")

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"remove", "--home", home, "--", "-1"})
	require.NoError(t, root.Execute(), buf.String())
	assert.Contains(t, buf.String(), "No account at index -1")

	got := stored(t, home)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Login)
}
