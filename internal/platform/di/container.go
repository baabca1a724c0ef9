// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	uc "github.com/ZYJLiu/token-metadata/internal/application/usecase"
	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
	appcfg "github.com/ZYJLiu/token-metadata/internal/infra/config"
	solanainfra "github.com/ZYJLiu/token-metadata/internal/infra/solana"
	objstore "github.com/ZYJLiu/token-metadata/internal/infra/storage"
	arweavestore "github.com/ZYJLiu/token-metadata/internal/infra/storage/arweave"
	gcsstore "github.com/ZYJLiu/token-metadata/internal/infra/storage/gcs"
	s3store "github.com/ZYJLiu/token-metadata/internal/infra/storage/s3"
)

// Container wires config -> RPC -> identity -> storage -> ledger -> usecase
// and owns the closable clients.
type Container struct {
	Config *appcfg.Config
	Log    *zap.Logger

	RPC      solanainfra.RPCClient
	Sender   *solanainfra.TxSender
	Identity *solanainfra.Identity

	Storage nftdom.StoragePort
	Ledger  nftdom.LedgerPort

	CollectionMint *uc.CollectionMintUsecase

	cleanup []func() error
}

// Close releases owned clients in reverse order of creation.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.cleanup) - 1; i >= 0; i-- {
		if err := c.cleanup[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.cleanup = nil
	return errors.Join(errs...)
}

func (c *Container) onClose(fn func() error) {
	c.cleanup = append(c.cleanup, fn)
}

func clientOptions(cfg *appcfg.Config, log *zap.Logger) []option.ClientOption {
	if cf := strings.TrimSpace(cfg.GCPCreds); cf != "" {
		log.Debug("using credentials file for GCP clients", zap.String("path", cf))
		return []option.ClientOption{option.WithCredentialsFile(cf)}
	}
	return nil
}

// NewStorage builds the upload backend selected by STORAGE_DRIVER.
// The returned close func is never nil.
func NewStorage(ctx context.Context, cfg *appcfg.Config, log *zap.Logger) (nftdom.StoragePort, func() error, error) {
	noop := func() error { return nil }

	driver, err := objstore.ParseDriver(cfg.StorageDriver)
	if err != nil {
		return nil, noop, err
	}

	switch driver {
	case objstore.DriverGCS:
		client, err := storage.NewClient(ctx, clientOptions(cfg, log)...)
		if err != nil {
			return nil, noop, fmt.Errorf("storage.NewClient: %w", err)
		}
		log.Info("storage ready", zap.String("driver", driver), zap.String("bucket", cfg.GCSBucket))
		return gcsstore.New(client, cfg.GCSBucket, log), client.Close, nil

	case objstore.DriverArweave:
		log.Info("storage ready", zap.String("driver", driver), zap.String("baseURL", cfg.ArweaveBaseURL))
		return arweavestore.NewHTTPUploader(cfg.ArweaveBaseURL, cfg.ArweaveAPIKey, log), noop, nil

	default:
		up, err := s3store.New(ctx, s3store.Config{
			Region:          cfg.AWSRegion,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
		}, log)
		if err != nil {
			return nil, noop, err
		}
		log.Info("storage ready",
			zap.String("driver", driver),
			zap.String("region", cfg.AWSRegion),
			zap.String("bucket", cfg.S3Bucket),
		)
		return up, noop, nil
	}
}

// NewContainer initializes everything the run command needs. Any failure
// closes what was already opened.
func NewContainer(ctx context.Context, cfg *appcfg.Config, log *zap.Logger) (_ *Container, err error) {
	if cfg == nil {
		return nil, errors.New("di: config is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := &Container{Config: cfg, Log: log}
	defer func() {
		if err != nil {
			_ = c.Close()
		}
	}()

	// 1) RPC
	c.RPC = solanainfra.NewRPCClient(cfg.RPCURL)
	c.Sender = solanainfra.NewTxSender(c.RPC, cfg.Cluster, cfg.ConfirmTimeout, log)
	log.Info("rpc connected", zap.String("endpoint", cfg.RPCURL), zap.String("cluster", cfg.Cluster))

	// 2) Identity (Secret Manager is optional)
	var secrets *solanainfra.SecretStore
	if cfg.UsesSecretManager() {
		secrets, err = solanainfra.NewGCPSecretStore(ctx, cfg.GCPCreds)
		if err != nil {
			return nil, err
		}
		c.onClose(secrets.Close)
	}

	loader := solanainfra.NewIdentityLoader(c.RPC, c.Sender, secrets, log)
	loader.SecretName = cfg.MintKeySecret
	loader.PrivateKey = cfg.PrivateKey
	loader.KeypairPath = cfg.KeypairPath
	loader.AirdropEnabled = cfg.AirdropEnabled
	loader.MinBalance = cfg.AirdropMinBalance
	loader.AirdropLamports = cfg.AirdropLamports

	c.Identity, err = loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}

	// 3) Storage
	store, closeStore, err := NewStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	c.onClose(closeStore)
	c.Storage = store

	// 4) Ledger + usecase
	c.Ledger = solanainfra.NewMintClient(c.Sender, c.Identity.Account, log)
	c.CollectionMint = uc.NewCollectionMintUsecase(c.Ledger, c.Storage, uc.DefaultMintConfig(), log)

	return c, nil
}
