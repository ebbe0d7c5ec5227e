package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"acctkeep/internal/app"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the account list whenever the stored file changes",
		Long: `Print the account list, then print it again every time another
acctkeep process changes it. Only the file backend can be watched.

Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watchAccounts(ctx, wire, cmd.OutOrStdout(), nil)
		},
	}
}

// watchAccounts prints the list, then reloads and prints it on every change
// to the stored file until ctx is done. ready, when non-nil, is closed once
// the watcher is installed.
func watchAccounts(ctx context.Context, w *app.Wire, out io.Writer, ready chan<- struct{}) error {
	path, ok := w.WatchPath()
	if !ok {
		return fmt.Errorf("backend %q cannot be watched; use the file backend", w.Config.Backend)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Writes replace the file by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	fmt.Fprintf(out, "Watching %s\n", path)
	printAccounts(out, w.Accounts.Accounts())
	if ready != nil {
		close(ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			svc, err := w.Reload()
			if err != nil {
				w.Logger.Warn("Reload failed", zap.String("path", path), zap.Error(err))
				fmt.Fprintf(out, "Error reloading accounts: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "---")
			printAccounts(out, svc.Accounts())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.Logger.Warn("Watcher overflowed", zap.Error(err))
				continue
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}
