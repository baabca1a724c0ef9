// cmd/collection_mint/keygen.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/spf13/cobra"

	solanainfra "github.com/ZYJLiu/token-metadata/internal/infra/solana"
)

var errKeypairExists = errors.New("keypair file already exists (use --force to overwrite)")

func newKeygenCmd() *cobra.Command {
	var (
		outfile string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Write a new Solana CLI compatible keypair file and print its address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := keygen(outfile, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pubkey: %s\nwrote:  %s\n", pub, outfile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outfile, "outfile", "o", "keypair.json", "keypair file to write")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func keygen(path string, force bool) (string, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s: %w", path, errKeypairExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	acc := types.NewAccount()
	if err := solanainfra.WriteKeypairFile(path, acc); err != nil {
		return "", err
	}
	return acc.PublicKey.ToBase58(), nil
}
