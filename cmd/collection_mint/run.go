// cmd/collection_mint/run.go
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZYJLiu/token-metadata/internal/infra/asset"
	appcfg "github.com/ZYJLiu/token-metadata/internal/infra/config"
	"github.com/ZYJLiu/token-metadata/internal/platform/di"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Upload the asset, mint collection + member, verify and rename (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMint(cmd, opts)
		},
	}
}

func runMint(cmd *cobra.Command, opts *rootOptions) error {
	cfg, log, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mint(ctx, cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		return err
	}
	log.Info("Finished successfully")
	return nil
}

func mint(ctx context.Context, cfg *appcfg.Config, log *zap.Logger) error {
	file, err := asset.Load(cfg.AssetPath)
	if err != nil {
		return err
	}

	c, err := di.NewContainer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil {
			log.Warn("close", zap.Error(cerr))
		}
	}()

	_, err = c.CollectionMint.Run(ctx, file)
	return err
}
