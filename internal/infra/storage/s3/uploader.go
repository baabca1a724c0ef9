// internal/infra/storage/s3/uploader.go
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
	objstore "github.com/ZYJLiu/token-metadata/internal/infra/storage"
)

const (
	DefaultRegion = "us-east-1"
	DefaultBucket = "metaplex-test-upload"
)

var ErrMissingCredentials = errors.New("s3: ACCESS_KEY_ID and SECRET_ACCESS_KEY are required")

// PutObjectAPI is the slice of *s3.Client the uploader calls.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// Uploader stores files in one bucket under random keys and returns
// their virtual-path URL.
type Uploader struct {
	api    PutObjectAPI
	region string
	bucket string
	log    *zap.Logger

	keyFn func(name string) string
}

var _ nftdom.StoragePort = (*Uploader)(nil)

// New builds an S3 client from static credentials.
func New(ctx context.Context, cfg Config, log *zap.Logger) (*Uploader, error) {
	ak := strings.TrimSpace(cfg.AccessKeyID)
	sk := strings.TrimSpace(cfg.SecretAccessKey)
	if ak == "" || sk == "" {
		return nil, ErrMissingCredentials
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = DefaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(ak, sk, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return NewWithAPI(awss3.NewFromConfig(awsCfg), region, cfg.Bucket, log), nil
}

func NewWithAPI(api PutObjectAPI, region, bucket string, log *zap.Logger) *Uploader {
	if log == nil {
		log = zap.NewNop()
	}
	region = strings.TrimSpace(region)
	if region == "" {
		region = DefaultRegion
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		bucket = DefaultBucket
	}
	return &Uploader{
		api:    api,
		region: region,
		bucket: bucket,
		log:    log.Named("storage.s3"),
		keyFn:  objstore.ObjectKey,
	}
}

func (u *Uploader) Upload(ctx context.Context, f nftdom.File) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	key := u.keyFn(f.Name)

	in := &awss3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(f.Data),
		ContentLength: aws.Int64(int64(len(f.Data))),
	}
	if ct := strings.TrimSpace(f.ContentType); ct != "" {
		in.ContentType = aws.String(ct)
	}
	if _, err := u.api.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("s3 PutObject %s/%s: %w", u.bucket, key, err)
	}

	uri := u.URL(key)
	u.log.Debug("uploaded", zap.String("name", f.Name), zap.Int("bytes", len(f.Data)), zap.String("uri", uri))
	return uri, nil
}

// URL is the public object URL for key.
func (u *Uploader) URL(key string) string {
	return objstore.PublicURL(fmt.Sprintf("https://s3.%s.amazonaws.com", u.region), u.bucket, key)
}
