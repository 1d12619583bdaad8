// Package main provides the molscope command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile string
	verbose bool
	logger  *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "molscope",
		Short: "Parse PDB structures into a renderable molecular graph",
		Long: `molscope ingests Protein Data Bank coordinate files and produces a
typed molecular graph: atoms, inferred covalent bonds, and secondary
structure classes, ready for interactive 3D rendering.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initRuntime()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.molscope.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newParseCmd())
	root.AddCommand(newFetchCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initRuntime wires config and logging before any subcommand runs.
func initRuntime() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".molscope")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetDefault("bonds.tolerance", 1.2)
	viper.SetDefault("bonds.max_per_atom", 4)
	viper.SetDefault("catalog.path", defaultCatalogPath())
	viper.SetDefault("fetch.dir", defaultFetchDir())

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	return nil
}

func defaultCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "molscope.duckdb"
	}
	return filepath.Join(home, ".molscope", "catalog.duckdb")
}

func defaultFetchDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pdb"
	}
	return filepath.Join(home, ".molscope", "pdb")
}
