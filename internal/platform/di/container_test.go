// internal/platform/di/container_test.go
package di

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appcfg "github.com/ZYJLiu/token-metadata/internal/infra/config"
	objstore "github.com/ZYJLiu/token-metadata/internal/infra/storage"
	arweavestore "github.com/ZYJLiu/token-metadata/internal/infra/storage/arweave"
	s3store "github.com/ZYJLiu/token-metadata/internal/infra/storage/s3"
)

func TestNewStorage(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("s3", func(t *testing.T) {
		st, closeFn, err := NewStorage(ctx, &appcfg.Config{
			StorageDriver: "s3", AccessKeyID: "a", SecretAccessKey: "b",
		}, log)
		require.NoError(t, err)
		assert.IsType(t, &s3store.Uploader{}, st)
		assert.NoError(t, closeFn())
	})

	t.Run("s3 without credentials", func(t *testing.T) {
		_, closeFn, err := NewStorage(ctx, &appcfg.Config{StorageDriver: "s3"}, log)
		assert.ErrorIs(t, err, s3store.ErrMissingCredentials)
		assert.NotNil(t, closeFn)
	})

	t.Run("arweave", func(t *testing.T) {
		st, _, err := NewStorage(ctx, &appcfg.Config{StorageDriver: "arweave", ArweaveBaseURL: "http://irys"}, log)
		require.NoError(t, err)
		assert.IsType(t, &arweavestore.HTTPUploader{}, st)
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := NewStorage(ctx, &appcfg.Config{StorageDriver: "ipfs"}, log)
		assert.ErrorIs(t, err, objstore.ErrUnknownDriver)
	})
}

func TestNewContainer_NilConfig(t *testing.T) {
	_, err := NewContainer(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestContainer_Close(t *testing.T) {
	var order []int
	boom := errors.New("boom")

	c := &Container{}
	c.onClose(func() error { order = append(order, 1); return nil })
	c.onClose(func() error { order = append(order, 2); return boom })

	assert.ErrorIs(t, c.Close(), boom)
	assert.Equal(t, []int{2, 1}, order)
	assert.NoError(t, c.Close())

	var nilC *Container
	assert.NoError(t, nilC.Close())
}
