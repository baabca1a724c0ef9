// internal/infra/storage/storage.go

// Package storage holds what the upload backends (s3, gcs, arweave) share.
package storage

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Driver names accepted by STORAGE_DRIVER.
const (
	DriverS3      = "s3"
	DriverGCS     = "gcs"
	DriverArweave = "arweave"
)

var ErrUnknownDriver = errors.New("storage: unknown driver")

func ParseDriver(s string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(s))
	switch d {
	case "":
		return DriverS3, nil
	case DriverS3, DriverGCS, DriverArweave:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDriver, s)
}

// ObjectKey returns a fresh random key that keeps the file's extension,
// e.g. "update.gif" -> "3f2b...-....gif".
func ObjectKey(name string) string {
	return uuid.NewString() + strings.ToLower(path.Ext(strings.TrimSpace(name)))
}

// PublicURL joins a base URL, bucket and key with single slashes.
func PublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Trim(bucket, "/") + "/" + strings.TrimLeft(key, "/")
}
