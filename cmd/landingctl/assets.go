package main

import (
	"fmt"

	"donna_landing_go/config"
	"donna_landing_go/services"

	"github.com/spf13/cobra"
)

func syncAssetsCmd() *cobra.Command {
	var (
		dir    string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "sync-assets",
		Short: "Upload image assets to the configured storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			services.InitializeStorage(cfg)

			keys, err := services.SyncAssets(cmd.Context(), services.Storage, dir, prefix)
			if err != nil {
				return err
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), services.Storage.GetPublicURL(key))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d files\n", len(keys))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "static/images", "Directory to upload")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix in the bucket")
	return cmd
}
