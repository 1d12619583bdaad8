package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/molscope/molscope/internal/output"
	"github.com/molscope/molscope/internal/pdb"
	"github.com/molscope/molscope/internal/pdbfile"
	"github.com/molscope/molscope/internal/store"
)

func newParseCmd() *cobra.Command {
	var (
		atomTable bool
		jsonOut   bool
		storeFlag bool
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "parse <file...>",
		Short: "Parse coordinate files and print a summary",
		Example: `  molscope parse 1abc.pdb
  molscope parse --atoms 1abc.pdb           # tab-delimited atom table
  molscope parse --json 1abc.pdb            # full graph as JSON
  molscope parse --store *.pdb              # record summaries in the catalog`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, atomTable, jsonOut, storeFlag, workers)
		},
	}

	cmd.Flags().BoolVar(&atomTable, "atoms", false, "print the per-atom table instead of a summary")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the full molecular graph as JSON")
	cmd.Flags().BoolVar(&storeFlag, "store", false, "record summaries in the structure catalog")
	cmd.Flags().IntVar(&workers, "workers", 0, "parse workers (0 = number of CPUs)")

	return cmd
}

func runParse(paths []string, atomTable, jsonOut, storeFlag bool, workers int) error {
	parser := newParserFromConfig()

	var catalog *store.Store
	if storeFlag {
		var err error
		catalog, err = store.Open(viper.GetString("catalog.path"))
		if err != nil {
			return err
		}
		defer catalog.Close()
	}

	jobs := make(chan pdb.ParseJob)
	var loadErr error
	go func() {
		defer close(jobs)
		for i, path := range paths {
			f, err := pdbfile.Open(path)
			if err != nil {
				loadErr = err
				return
			}
			// The mapping is released before the job is queued, so
			// the job needs its own copy.
			data := make([]byte, len(f.Bytes()))
			copy(data, f.Bytes())
			f.Close()

			jobs <- pdb.ParseJob{Seq: i, Name: name(path), Data: data}
		}
	}()

	results := parser.ParseAll(jobs, workers)
	err := pdb.OrderedCollect(results, func(r pdb.ParseResult) error {
		return emit(r, atomTable, jsonOut, catalog)
	})
	if err != nil {
		return err
	}
	return loadErr
}

func emit(r pdb.ParseResult, atomTable, jsonOut bool, catalog *store.Store) error {
	logger.Debug("parsed structure",
		zap.String("name", r.Name),
		zap.Int("atoms", len(r.Structure.Atoms)),
		zap.Int("bonds", len(r.Structure.Bonds)))

	if catalog != nil {
		if err := catalog.Put(r.Name, r.Structure); err != nil {
			return err
		}
	}

	switch {
	case jsonOut:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Structure)
	case atomTable:
		tw := output.NewTabWriter(os.Stdout)
		if err := tw.WriteHeader(); err != nil {
			return err
		}
		for i := range r.Structure.Atoms {
			if err := tw.Write(&r.Structure.Atoms[i]); err != nil {
				return err
			}
		}
		return tw.Flush()
	default:
		return output.WriteSummary(os.Stdout, r.Name, r.Structure)
	}
}

func newParserFromConfig() *pdb.Parser {
	p := pdb.NewParser(pdb.Config{
		BondTolerance:   viper.GetFloat64("bonds.tolerance"),
		MaxBondsPerAtom: viper.GetInt("bonds.max_per_atom"),
	})
	p.SetLogger(logger)
	return p
}

func name(path string) string {
	base := filepath.Base(path)
	for ext := filepath.Ext(base); ext != ""; ext = filepath.Ext(base) {
		base = base[:len(base)-len(ext)]
	}
	if base == "" {
		return path
	}
	return base
}
