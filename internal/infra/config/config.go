// internal/infra/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ZYJLiu/token-metadata/internal/infra/asset"
	objstore "github.com/ZYJLiu/token-metadata/internal/infra/storage"
	s3store "github.com/ZYJLiu/token-metadata/internal/infra/storage/s3"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Keys (environment variable names; YAML keys are the lower-case form).
const (
	KeyRPCURL            = "SOLANA_RPC_URL"
	KeyCluster           = "SOLANA_CLUSTER"
	KeyKeypairPath       = "KEYPAIR_PATH"
	KeyPrivateKey        = "PRIVATE_KEY"
	KeyMintKeySecret     = "SOLANA_MINT_KEY_SECRET"
	KeyGCPProjectID      = "GCP_PROJECT_ID"
	KeyGCPCreds          = "GOOGLE_APPLICATION_CREDENTIALS"
	KeyAirdropEnabled    = "AIRDROP_ENABLED"
	KeyAirdropMinBalance = "AIRDROP_MIN_BALANCE_LAMPORTS"
	KeyAirdropLamports   = "AIRDROP_LAMPORTS"
	KeyConfirmTimeout    = "CONFIRM_TIMEOUT"
	KeyStorageDriver     = "STORAGE_DRIVER"
	KeyAWSRegion         = "AWS_REGION"
	KeyS3Bucket          = "S3_BUCKET"
	KeyAccessKeyID       = "ACCESS_KEY_ID"
	KeySecretAccessKey   = "SECRET_ACCESS_KEY"
	KeyGCSBucket         = "GCS_BUCKET"
	KeyArweaveBaseURL    = "ARWEAVE_BASE_URL"
	KeyArweaveAPIKey     = "ARWEAVE_API_KEY"
	KeyAssetPath         = "ASSET_PATH"
	KeyLogLevel          = "LOG_LEVEL"
)

const lamportsPerSOL = 1_000_000_000

type Config struct {
	// Solana
	RPCURL      string
	Cluster     string
	KeypairPath string
	PrivateKey  string

	// GCP Secret Manager holding the payer keypair (optional)
	MintKeySecret string
	GCPProjectID  string
	GCPCreds      string

	AirdropEnabled    bool
	AirdropMinBalance uint64
	AirdropLamports   uint64
	ConfirmTimeout    time.Duration

	// Storage
	StorageDriver   string
	AWSRegion       string
	S3Bucket        string
	AccessKeyID     string
	SecretAccessKey string
	GCSBucket       string
	ArweaveBaseURL  string
	ArweaveAPIKey   string

	AssetPath string
	LogLevel  string
}

// NewViper returns a viper instance bound to the environment with every
// default registered.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyRPCURL, "https://api.devnet.solana.com")
	v.SetDefault(KeyCluster, "devnet")
	v.SetDefault(KeyKeypairPath, "keypair.json")
	v.SetDefault(KeyPrivateKey, "")
	v.SetDefault(KeyMintKeySecret, "")
	v.SetDefault(KeyGCPProjectID, "")
	v.SetDefault(KeyGCPCreds, "")
	v.SetDefault(KeyAirdropEnabled, true)
	v.SetDefault(KeyAirdropMinBalance, uint64(lamportsPerSOL))
	v.SetDefault(KeyAirdropLamports, uint64(lamportsPerSOL))
	v.SetDefault(KeyConfirmTimeout, 90*time.Second)
	v.SetDefault(KeyStorageDriver, objstore.DriverS3)
	v.SetDefault(KeyAWSRegion, s3store.DefaultRegion)
	v.SetDefault(KeyS3Bucket, s3store.DefaultBucket)
	v.SetDefault(KeyAccessKeyID, "")
	v.SetDefault(KeySecretAccessKey, "")
	v.SetDefault(KeyGCSBucket, "")
	v.SetDefault(KeyArweaveBaseURL, "")
	v.SetDefault(KeyArweaveAPIKey, "")
	v.SetDefault(KeyAssetPath, asset.DefaultPath)
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from the environment and, when configFile is
// set, a YAML/JSON/TOML file (environment wins).
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}
	if cf := strings.TrimSpace(configFile); cf != "" {
		v.SetConfigFile(cf)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cf, err)
		}
	}

	cfg := &Config{
		RPCURL:      strings.TrimSpace(v.GetString(KeyRPCURL)),
		Cluster:     strings.TrimSpace(v.GetString(KeyCluster)),
		KeypairPath: strings.TrimSpace(v.GetString(KeyKeypairPath)),
		PrivateKey:  strings.TrimSpace(v.GetString(KeyPrivateKey)),

		MintKeySecret: strings.TrimSpace(v.GetString(KeyMintKeySecret)),
		GCPProjectID:  strings.TrimSpace(v.GetString(KeyGCPProjectID)),
		GCPCreds:      strings.TrimSpace(v.GetString(KeyGCPCreds)),

		AirdropEnabled:    v.GetBool(KeyAirdropEnabled),
		AirdropMinBalance: v.GetUint64(KeyAirdropMinBalance),
		AirdropLamports:   v.GetUint64(KeyAirdropLamports),
		ConfirmTimeout:    v.GetDuration(KeyConfirmTimeout),

		StorageDriver:   strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageDriver))),
		AWSRegion:       strings.TrimSpace(v.GetString(KeyAWSRegion)),
		S3Bucket:        strings.TrimSpace(v.GetString(KeyS3Bucket)),
		AccessKeyID:     strings.TrimSpace(v.GetString(KeyAccessKeyID)),
		SecretAccessKey: strings.TrimSpace(v.GetString(KeySecretAccessKey)),
		GCSBucket:       strings.TrimSpace(v.GetString(KeyGCSBucket)),
		ArweaveBaseURL:  strings.TrimSpace(v.GetString(KeyArweaveBaseURL)),
		ArweaveAPIKey:   strings.TrimSpace(v.GetString(KeyArweaveAPIKey)),

		AssetPath: strings.TrimSpace(v.GetString(KeyAssetPath)),
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks everything that can be checked before a remote call.
func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyRPCURL)
	}
	// airdrops and throwaway mints only make sense on test clusters
	if isMainnet(c.Cluster) || isMainnet(c.RPCURL) {
		return fmt.Errorf("%w: mainnet is not supported (%s=%q %s=%q)",
			ErrInvalidConfig, KeyCluster, c.Cluster, KeyRPCURL, c.RPCURL)
	}
	if c.ConfirmTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyConfirmTimeout)
	}
	if c.MintKeySecret == "" && c.PrivateKey == "" && c.KeypairPath == "" {
		return fmt.Errorf("%w: one of %s, %s, %s is required", ErrInvalidConfig, KeyMintKeySecret, KeyPrivateKey, KeyKeypairPath)
	}
	if c.AirdropEnabled && c.AirdropLamports == 0 {
		return fmt.Errorf("%w: %s must be positive when airdrops are enabled", ErrInvalidConfig, KeyAirdropLamports)
	}

	driver, err := objstore.ParseDriver(c.StorageDriver)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.StorageDriver = driver
	switch driver {
	case objstore.DriverS3:
		if c.AccessKeyID == "" || c.SecretAccessKey == "" {
			return fmt.Errorf("%w: %s and %s are required for s3", ErrInvalidConfig, KeyAccessKeyID, KeySecretAccessKey)
		}
	case objstore.DriverGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("%w: %s is required for gcs", ErrInvalidConfig, KeyGCSBucket)
		}
	case objstore.DriverArweave:
		if c.ArweaveBaseURL == "" {
			return fmt.Errorf("%w: %s is required for arweave", ErrInvalidConfig, KeyArweaveBaseURL)
		}
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, KeyLogLevel, c.LogLevel)
	}
	return nil
}

// UsesSecretManager reports whether the payer keypair lives in Secret Manager.
func (c *Config) UsesSecretManager() bool {
	return c.MintKeySecret != ""
}

func isMainnet(s string) bool {
	return strings.Contains(strings.ToLower(s), "mainnet")
}
