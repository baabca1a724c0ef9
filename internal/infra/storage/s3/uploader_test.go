// internal/infra/storage/s3/uploader_test.go
package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
)

var ctx = context.Background()

type fakePutObject struct {
	in   *awss3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutObject) PutObject(_ context.Context, in *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		b, err := io.ReadAll(in.Body)
		if err != nil {
			return nil, err
		}
		f.body = b
	}
	if f.err != nil {
		return nil, f.err
	}
	return &awss3.PutObjectOutput{}, nil
}

func TestUploader_Upload(t *testing.T) {
	api := &fakePutObject{}
	u := NewWithAPI(api, "", "", nil)
	u.keyFn = func(name string) string { return "fixed-key.gif" }

	uri, err := u.Upload(ctx, nftdom.File{Name: "update.gif", ContentType: "image/gif", Data: []byte("GIF89a")})
	require.NoError(t, err)
	assert.Equal(t, "https://s3.us-east-1.amazonaws.com/metaplex-test-upload/fixed-key.gif", uri)

	require.NotNil(t, api.in)
	assert.Equal(t, DefaultBucket, aws.ToString(api.in.Bucket))
	assert.Equal(t, "fixed-key.gif", aws.ToString(api.in.Key))
	assert.Equal(t, "image/gif", aws.ToString(api.in.ContentType))
	assert.Equal(t, int64(6), aws.ToInt64(api.in.ContentLength))
	assert.Equal(t, []byte("GIF89a"), api.body)
}

func TestUploader_UploadErrors(t *testing.T) {
	api := &fakePutObject{}
	u := NewWithAPI(api, "eu-west-1", "b", nil)

	_, err := u.Upload(ctx, nftdom.File{Name: "empty.json"})
	assert.ErrorIs(t, err, nftdom.ErrEmptyFile)
	assert.Nil(t, api.in)

	api.err = errors.New("AccessDenied")
	_, err = u.Upload(ctx, nftdom.File{Name: "m.json", Data: []byte("{}")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDenied")
}

func TestUploader_URL(t *testing.T) {
	u := NewWithAPI(&fakePutObject{}, "eu-west-1", "bucket", nil)
	assert.Equal(t, "https://s3.eu-west-1.amazonaws.com/bucket/k.json", u.URL("k.json"))
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(ctx, Config{AccessKeyID: "ak"}, nil)
	assert.ErrorIs(t, err, ErrMissingCredentials)

	u, err := New(ctx, Config{AccessKeyID: "ak", SecretAccessKey: "sk"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.us-east-1.amazonaws.com/metaplex-test-upload/x", u.URL("x"))
}
