package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/molscope/molscope/internal/fetch"
)

func newFetchCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "fetch <id...>",
		Short: "Download entries from the RCSB archive",
		Example: `  molscope fetch 1CRN
  molscope fetch 1CRN 4HHB --dir ./structures`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = viper.GetString("fetch.dir")
			}
			client := fetch.NewClient()
			for _, id := range args {
				path, err := client.FetchToFile(cmd.Context(), id, dir)
				if err != nil {
					return err
				}
				logger.Info("fetched entry",
					zap.String("id", id), zap.String("path", path))
				fmt.Printf("%s -> %s\n", id, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "download directory (default from config fetch.dir)")

	return cmd
}
