// Package cli wires configuration, the catalog and the terminal UI behind
// the kbase command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kbase/internal/catalog"
	"kbase/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// envE2E makes the UI print a ready marker for the pty test harness
const envE2E = "KBASE_E2E_TEST"

// options holds the persistent flags shared by all commands
type options struct {
	configPath  string
	catalogPath string
}

// NewRootCmd builds the kbase command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "kbase",
		Short: "Terminal knowledge base browser",
		Long: `kbase browses a read-only catalog of knowledge base articles.
Articles can be narrowed by a free-text search, a category and any number
of tags, and opened in a pager to read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "path to a YAML article catalog (default: built-in)")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kbase %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// loadConfig loads the config named by --config or the default one
func loadConfig(opts *options) (*config.Config, string, bool, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, created, err := config.Load(path)
	if err != nil {
		return nil, path, false, fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, created, nil
}

// loadCatalog picks --catalog, then catalog_path from config, then the
// built-in catalog
func loadCatalog(opts *options, cfg *config.Config) (*catalog.Catalog, error) {
	path := opts.catalogPath
	if path == "" && cfg != nil {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
