// internal/infra/storage/arweave/uploader.go
package arweave

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
)

var (
	ErrEndpointNotConfigured = errors.New("arweave: baseURL is empty")
	ErrEmptyURI              = errors.New("arweave: upload response has empty uri")
)

// HTTPUploader talks to an Irys uploader service:
//
//	POST {base}/upload/json  (application/json body)
//	POST {base}/upload/file  (raw body, Content-Type of the file)
//
// Both answer {"uri": "https://gateway.irys.xyz/<id>"}.
type HTTPUploader struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     *zap.Logger
}

var _ nftdom.StoragePort = (*HTTPUploader)(nil)

func NewHTTPUploader(baseURL, apiKey string, log *zap.Logger) *HTTPUploader {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPUploader{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		log:     log.Named("storage.arweave"),
	}
}

// Upload routes JSON documents to /upload/json and everything else to
// /upload/file.
func (u *HTTPUploader) Upload(ctx context.Context, f nftdom.File) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	ct := strings.TrimSpace(f.ContentType)
	if ct == "" {
		ct = "application/octet-stream"
	}
	if isJSON(ct) {
		return u.post(ctx, "/upload/json", "application/json", f.Name, f.Data)
	}
	return u.post(ctx, "/upload/file", ct, f.Name, f.Data)
}

func (u *HTTPUploader) post(ctx context.Context, path, contentType, name string, body []byte) (string, error) {
	if u.baseURL == "" {
		return "", ErrEndpointNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if name != "" {
		req.Header.Set("X-File-Name", name)
	}
	if u.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+u.apiKey)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("arweave %s: %w", path, err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		u.log.Warn("upload failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return "", fmt.Errorf("arweave %s failed: status=%d body=%s", path, resp.StatusCode, string(bodyBytes))
	}

	var res struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if strings.TrimSpace(res.URI) == "" {
		return "", ErrEmptyURI
	}

	u.log.Debug("uploaded", zap.String("path", path), zap.String("name", name), zap.String("uri", res.URI))
	return res.URI, nil
}

func isJSON(contentType string) bool {
	ct := strings.ToLower(contentType)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.TrimSpace(ct)
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}
