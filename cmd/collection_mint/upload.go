// cmd/collection_mint/upload.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZYJLiu/token-metadata/internal/infra/asset"
	"github.com/ZYJLiu/token-metadata/internal/platform/di"
)

func newUploadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload one file through the configured storage driver and print its URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			file, err := asset.Load(args[0])
			if err != nil {
				log.Error("upload failed", zap.Error(err))
				return err
			}

			ctx := cmd.Context()
			store, closeStore, err := di.NewStorage(ctx, cfg, log)
			if err != nil {
				log.Error("upload failed", zap.Error(err))
				return err
			}
			defer func() { _ = closeStore() }()

			uri, err := store.Upload(ctx, file)
			if err != nil {
				log.Error("upload failed", zap.Error(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		},
	}
}
