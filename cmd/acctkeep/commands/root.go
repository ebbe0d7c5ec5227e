package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"acctkeep/internal/app"
)

var (
	home    string
	backend string
	verbose bool

	wire *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	home, backend, verbose, wire = "", "", false, nil

	root := &cobra.Command{
		Use:          "acctkeep",
		Short:        "Manage stored LDAP and local account profiles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = os.Getenv("ACCTKEEP_HOME")
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".acctkeep")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("backend") {
				cfg.Backend = app.Backend(backend)
			}
			if verbose {
				cfg.Verbose = true
			}

			logger, err := app.NewLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, logger)
			if err != nil {
				_ = logger.Sync()
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			_ = wire.Logger.Sync()
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default $ACCTKEEP_HOME or ~/.acctkeep)")
	root.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: file, sqlite or memory")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(listCmd(), showCmd(), addCmd(), updateCmd(), removeCmd(), watchCmd())
	return root
}
