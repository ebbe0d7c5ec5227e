package app

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"acctkeep/internal/domain"
	"acctkeep/internal/services/accounts"
	"acctkeep/internal/store"
)

// Wire bundles the backend, the account store and the logger for the CLI.
type Wire struct {
	Config   Config
	Logger   *zap.Logger
	KV       domain.KVStore
	Accounts *accounts.Service

	closeKV func() error
}

// NewLogger builds the CLI logger: production JSON on stderr, debug level
// when verbose.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewWire constructs the dependency graph from cfg. A nil logger discards
// all log output.
func NewWire(cfg Config, logger *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	kv, closeKV, err := openKV(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := accounts.New(kv, accountOptions(cfg, logger)...)
	if err != nil {
		_ = closeKV()
		return nil, err
	}

	return &Wire{
		Config:   cfg,
		Logger:   logger,
		KV:       kv,
		Accounts: svc,
		closeKV:  closeKV,
	}, nil
}

// Reload builds a fresh account store over the same backend, reading the
// persisted list again.
func (w *Wire) Reload() (*accounts.Service, error) {
	return accounts.New(w.KV, accountOptions(w.Config, w.Logger)...)
}

// WatchPath returns the file holding the persisted list, when the backend
// keeps it in a file of its own.
func (w *Wire) WatchPath() (string, bool) {
	fkv, ok := w.KV.(*store.FileKV)
	if !ok {
		return "", false
	}
	return fkv.Path(w.Config.Key), true
}

// Close releases the backend.
func (w *Wire) Close() error {
	if w.closeKV == nil {
		return nil
	}
	return w.closeKV()
}

func accountOptions(cfg Config, logger *zap.Logger) []accounts.Option {
	return []accounts.Option{
		accounts.WithKey(cfg.Key),
		accounts.WithLogger(logger.Named("accounts")),
		accounts.WithResetOnMalformed(cfg.ResetOnMalformed),
	}
}

func openKV(cfg Config) (domain.KVStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case BackendMemory:
		return store.NewMemoryKV(), noop, nil
	case BackendSQLite:
		kv, err := store.OpenSQLiteKV(filepath.Join(cfg.Home, SQLiteFileName))
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	default:
		return store.NewFileKV(cfg.Home), noop, nil
	}
}
