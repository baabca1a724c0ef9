// internal/infra/solana/identity.go
package solana

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/types"
	"go.uber.org/zap"
)

var ErrIdentityUnfunded = errors.New("identity: payer balance below minimum after airdrop")

const LamportsPerSOL uint64 = 1_000_000_000

const (
	defaultMinBalance      = LamportsPerSOL
	defaultAirdropLamports = LamportsPerSOL
)

// IdentitySource records where the payer keypair came from.
type IdentitySource string

const (
	SourceSecretManager IdentitySource = "secret_manager"
	SourceSecretCreated IdentitySource = "secret_manager_created"
	SourceEnv           IdentitySource = "env"
	SourceFile          IdentitySource = "file"
	SourceGenerated     IdentitySource = "generated"
)

// Identity is the loaded payer plus its funded balance.
type Identity struct {
	Account  types.Account
	Source   IdentitySource
	Balance  uint64
	Airdrops int
}

type IdentityLoader struct {
	RPC    RPCClient
	Sender *TxSender // confirms airdrops
	Secret *SecretStore

	SecretName  string // full version path; empty disables Secret Manager
	PrivateKey  string // PRIVATE_KEY contents
	KeypairPath string

	AirdropEnabled  bool
	MinBalance      uint64
	AirdropLamports uint64

	log *zap.Logger
	gen func() types.Account
}

func NewIdentityLoader(rpc RPCClient, sender *TxSender, secret *SecretStore, log *zap.Logger) *IdentityLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &IdentityLoader{
		RPC:             rpc,
		Sender:          sender,
		Secret:          secret,
		AirdropEnabled:  true,
		MinBalance:      defaultMinBalance,
		AirdropLamports: defaultAirdropLamports,
		log:             log.Named("identity"),
		gen:             types.NewAccount,
	}
}

// Load resolves the payer keypair and makes sure it can pay for the run.
func (l *IdentityLoader) Load(ctx context.Context) (*Identity, error) {
	acc, src, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	l.log.Info("payer loaded",
		zap.String("pubkey", acc.PublicKey.ToBase58()),
		zap.String("source", string(src)),
	)

	id := &Identity{Account: acc, Source: src}
	if err := l.ensureFunded(ctx, id); err != nil {
		return nil, err
	}
	return id, nil
}

func (l *IdentityLoader) resolve(ctx context.Context) (types.Account, IdentitySource, error) {
	if name := strings.TrimSpace(l.SecretName); name != "" {
		if l.Secret == nil {
			return types.Account{}, "", fmt.Errorf("identity: secret %s configured without a secret store", name)
		}
		return l.fromSecret(ctx, name)
	}

	if pk := strings.TrimSpace(l.PrivateKey); pk != "" {
		acc, err := DecodeKeypair([]byte(pk))
		if err != nil {
			return types.Account{}, "", fmt.Errorf("PRIVATE_KEY: %w", err)
		}
		return acc, SourceEnv, nil
	}

	path := strings.TrimSpace(l.KeypairPath)
	if path == "" {
		return types.Account{}, "", errors.New("identity: no keypair source configured")
	}
	acc, err := ReadKeypairFile(path)
	if err == nil {
		return acc, SourceFile, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return types.Account{}, "", err
	}

	acc = l.gen()
	if err := WriteKeypairFile(path, acc); err != nil {
		return types.Account{}, "", err
	}
	l.log.Info("generated new keypair", zap.String("path", path))
	return acc, SourceGenerated, nil
}

func (l *IdentityLoader) fromSecret(ctx context.Context, name string) (types.Account, IdentitySource, error) {
	data, err := l.Secret.Load(ctx, name)
	if err == nil {
		acc, err := DecodeKeypair(data)
		if err != nil {
			return types.Account{}, "", fmt.Errorf("secret %s: %w", name, err)
		}
		return acc, SourceSecretManager, nil
	}
	if !errors.Is(err, ErrSecretNotFound) {
		return types.Account{}, "", err
	}

	acc := l.gen()
	payload, err := EncodeKeypair(acc)
	if err != nil {
		return types.Account{}, "", err
	}
	if err := l.Secret.Save(ctx, name, payload); err != nil {
		return types.Account{}, "", err
	}
	l.log.Info("stored new keypair in secret manager", zap.String("secret", name))
	return acc, SourceSecretCreated, nil
}

func (l *IdentityLoader) ensureFunded(ctx context.Context, id *Identity) error {
	if l.RPC == nil {
		return ErrTxNotConfigured
	}
	addr := id.Account.PublicKey.ToBase58()

	bal, err := l.balance(ctx, addr)
	if err != nil {
		return fmt.Errorf("GetBalance: %w", err)
	}
	id.Balance = bal
	if bal >= l.MinBalance {
		l.log.Debug("balance ok", zap.Uint64("lamports", bal))
		return nil
	}
	if !l.AirdropEnabled {
		return fmt.Errorf("%w: have=%d want=%d (airdrop disabled)", ErrIdentityUnfunded, bal, l.MinBalance)
	}

	l.log.Info("requesting airdrop",
		zap.Uint64("balance", bal),
		zap.Uint64("lamports", l.AirdropLamports),
	)
	sig, err := l.RPC.RequestAirdrop(ctx, addr, l.AirdropLamports)
	if err != nil {
		return fmt.Errorf("RequestAirdrop: %w", err)
	}
	id.Airdrops++
	if l.Sender != nil {
		if err := l.Sender.Confirm(ctx, sig); err != nil {
			return fmt.Errorf("airdrop: %w", err)
		}
	}

	bal, err = l.balance(ctx, addr)
	if err != nil {
		return fmt.Errorf("GetBalance: %w", err)
	}
	id.Balance = bal
	if bal < l.MinBalance {
		return fmt.Errorf("%w: have=%d want=%d", ErrIdentityUnfunded, bal, l.MinBalance)
	}
	l.log.Info("airdrop confirmed", zap.Uint64("balance", bal))
	return nil
}

// balance reads at the commitment Confirm waits for, so a just-confirmed
// airdrop is visible.
func (l *IdentityLoader) balance(ctx context.Context, addr string) (uint64, error) {
	return l.RPC.GetBalanceWithConfig(ctx, addr, client.GetBalanceConfig{Commitment: readCommitment})
}
