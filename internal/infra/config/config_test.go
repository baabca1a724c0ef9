// internal/infra/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setS3Keys(t *testing.T) {
	t.Setenv(KeyAccessKeyID, "AKIA")
	t.Setenv(KeySecretAccessKey, "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setS3Keys(t)

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://api.devnet.solana.com", cfg.RPCURL)
	assert.Equal(t, "devnet", cfg.Cluster)
	assert.Equal(t, "keypair.json", cfg.KeypairPath)
	assert.True(t, cfg.AirdropEnabled)
	assert.Equal(t, uint64(1_000_000_000), cfg.AirdropMinBalance)
	assert.Equal(t, uint64(1_000_000_000), cfg.AirdropLamports)
	assert.Equal(t, 90*time.Second, cfg.ConfirmTimeout)
	assert.Equal(t, "s3", cfg.StorageDriver)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "metaplex-test-upload", cfg.S3Bucket)
	assert.Equal(t, "assets/update.gif", cfg.AssetPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.UsesSecretManager())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(KeyStorageDriver, "Arweave")
	t.Setenv(KeyArweaveBaseURL, "https://irys.example")
	t.Setenv(KeyAirdropEnabled, "false")
	t.Setenv(KeyConfirmTimeout, "15s")
	t.Setenv(KeyMintKeySecret, "projects/p/secrets/s/versions/latest")
	t.Setenv(KeyLogLevel, "DEBUG")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "arweave", cfg.StorageDriver)
	assert.Equal(t, "https://irys.example", cfg.ArweaveBaseURL)
	assert.False(t, cfg.AirdropEnabled)
	assert.Equal(t, 15*time.Second, cfg.ConfirmTimeout)
	assert.True(t, cfg.UsesSecretManager())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mint.yaml")
	require.NoError(t, os.WriteFile(p, []byte("storage_driver: gcs\ngcs_bucket: from-file\nsolana_cluster: testnet\n"), 0o600))
	t.Setenv(KeyGCSBucket, "from-env")

	cfg, err := Load(NewViper(), p)
	require.NoError(t, err)
	assert.Equal(t, "gcs", cfg.StorageDriver)
	assert.Equal(t, "from-env", cfg.GCSBucket)
	assert.Equal(t, "testnet", cfg.Cluster)

	_, err = Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RPCURL:          "https://api.devnet.solana.com",
			KeypairPath:     "keypair.json",
			AirdropEnabled:  true,
			AirdropLamports: 1,
			ConfirmTimeout:  time.Second,
			StorageDriver:   "s3",
			AccessKeyID:     "a",
			SecretAccessKey: "b",
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(c *Config){
		"no rpc":              func(c *Config) { c.RPCURL = "" },
		"mainnet cluster":     func(c *Config) { c.Cluster = "mainnet-beta" },
		"mainnet rpc":         func(c *Config) { c.RPCURL = "https://api.mainnet-beta.solana.com" },
		"no timeout":          func(c *Config) { c.ConfirmTimeout = 0 },
		"no keypair source":   func(c *Config) { c.KeypairPath = "" },
		"zero airdrop":        func(c *Config) { c.AirdropLamports = 0 },
		"unknown driver":      func(c *Config) { c.StorageDriver = "ipfs" },
		"s3 without secret":   func(c *Config) { c.SecretAccessKey = "" },
		"gcs without bucket":  func(c *Config) { c.StorageDriver = "gcs" },
		"arweave without url": func(c *Config) { c.StorageDriver = "arweave" },
		"bad log level":       func(c *Config) { c.LogLevel = "trace" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(p, []byte("DOTENV_TEST_A=from-file\nDOTENV_TEST_B=from-file\n"), 0o600))

	t.Setenv("DOTENV_TEST_B", "from-env")
	t.Setenv("DOTENV_TEST_A", "")
	require.NoError(t, os.Unsetenv("DOTENV_TEST_A"))

	require.NoError(t, LoadDotEnv(p, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("DOTENV_TEST_A"))
	assert.Equal(t, "from-env", os.Getenv("DOTENV_TEST_B"))
}
