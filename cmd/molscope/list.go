package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/molscope/molscope/internal/store"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List structures recorded in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := store.Open(viper.GetString("catalog.path"))
			if err != nil {
				return err
			}
			defer catalog.Close()

			summaries, err := catalog.List()
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("Catalog is empty. Run: molscope parse --store <file>")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tATOMS\tBONDS\tCHAINS\tHELIX\tSHEET\tCOIL\tLIGAND\tMASS\tPARSED")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\t%d\t%d\t%d\t%d Da\t%s\n",
					s.Name, s.AtomCount, s.BondCount, s.Chains,
					s.HelixAtoms, s.SheetAtoms, s.CoilAtoms, s.LigandAtoms,
					s.Mass, s.ParsedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
}
