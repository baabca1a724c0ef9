// cmd/collection_mint/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appcfg "github.com/ZYJLiu/token-metadata/internal/infra/config"
	"github.com/ZYJLiu/token-metadata/internal/infra/logging"
)

type rootOptions struct {
	configFile string
	envFile    string
}

func main() {
	os.Exit(ExitCode(newRootCmd().Execute()))
}

// ExitCode maps the outcome of a command to the process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "collection-mint",
		Short:         "Create a verified Metaplex collection and member NFT on a Solana test cluster",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMint(cmd, opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "optional config file (yaml/json/toml)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newRunCmd(opts),
		newKeygenCmd(),
		newUploadCmd(opts),
	)
	return root
}

// setup loads dotenv + config and builds the logger. Errors are printed
// to stderr here because no logger exists yet.
func setup(opts *rootOptions) (*appcfg.Config, *zap.Logger, error) {
	if err := appcfg.LoadDotEnv(opts.envFile); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
		return nil, nil, err
	}
	cfg, err := appcfg.Load(appcfg.NewViper(), opts.configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return nil, nil, err
	}
	return cfg, log, nil
}
