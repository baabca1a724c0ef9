// internal/infra/storage/gcs/uploader.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
	objstore "github.com/ZYJLiu/token-metadata/internal/infra/storage"
)

// Default public base (works when the bucket is publicly readable).
const PublicBaseURL = "https://storage.googleapis.com"

var ErrBucketNotConfigured = errors.New("gcs: bucket is empty")

// ObjectWriterFunc opens a writer for bucket/key.
type ObjectWriterFunc func(ctx context.Context, bucket, key, contentType string) io.WriteCloser

type Uploader struct {
	open          ObjectWriterFunc
	bucket        string
	PublicBaseURL string
	log           *zap.Logger

	keyFn func(name string) string
}

var _ nftdom.StoragePort = (*Uploader)(nil)

func New(client *storage.Client, bucket string, log *zap.Logger) *Uploader {
	return NewWithWriter(clientWriter(client), bucket, log)
}

func NewWithWriter(open ObjectWriterFunc, bucket string, log *zap.Logger) *Uploader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Uploader{
		open:          open,
		bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: PublicBaseURL,
		log:           log.Named("storage.gcs"),
		keyFn:         objstore.ObjectKey,
	}
}

func clientWriter(client *storage.Client) ObjectWriterFunc {
	return func(ctx context.Context, bucket, key, contentType string) io.WriteCloser {
		w := client.Bucket(bucket).Object(key).NewWriter(ctx)
		if ct := strings.TrimSpace(contentType); ct != "" {
			w.ContentType = ct
		}
		// single-request upload; assets are small
		w.ChunkSize = 0
		w.Metadata = map[string]string{
			"uploadedAt": time.Now().UTC().Format(time.RFC3339),
		}
		return w
	}
}

func (u *Uploader) Upload(ctx context.Context, f nftdom.File) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	if u.bucket == "" {
		return "", ErrBucketNotConfigured
	}
	key := u.keyFn(f.Name)

	w := u.open(ctx, u.bucket, key, f.ContentType)
	if _, err := w.Write(f.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %s/%s: %w", u.bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s/%s: %w", u.bucket, key, err)
	}

	uri := objstore.PublicURL(u.PublicBaseURL, u.bucket, key)
	u.log.Debug("uploaded", zap.String("name", f.Name), zap.Int("bytes", len(f.Data)), zap.String("uri", uri))
	return uri, nil
}
