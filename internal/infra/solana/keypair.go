// internal/infra/solana/keypair.go
package solana

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

var ErrInvalidKeypair = errors.New("keypair: invalid secret key")

// DecodeKeypair restores an account from a secret key in one of the
// accepted encodings:
//   - solana-keygen JSON array [u8;64]
//   - JSON string holding base64 of the 64 bytes
//   - bare base58 string (wallet export format)
func DecodeKeypair(data []byte) (types.Account, error) {
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return types.Account{}, fmt.Errorf("%w: empty", ErrInvalidKeypair)
	}

	keyBytes, err := decodeKeypairBytes(raw)
	if err != nil {
		return types.Account{}, err
	}

	acc, err := types.AccountFromBytes(keyBytes)
	if err != nil {
		return types.Account{}, fmt.Errorf("%w: AccountFromBytes: %v", ErrInvalidKeypair, err)
	}
	return acc, nil
}

func decodeKeypairBytes(raw string) ([]byte, error) {
	if strings.HasPrefix(raw, "[") {
		var ints []int
		if err := json.Unmarshal([]byte(raw), &ints); err != nil {
			return nil, fmt.Errorf("%w: unmarshal keypair json: %v", ErrInvalidKeypair, err)
		}
		if len(ints) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeypair, len(ints), ed25519.PrivateKeySize)
		}
		b := make([]byte, len(ints))
		for i, v := range ints {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("%w: byte %d out of range: %d", ErrInvalidKeypair, i, v)
			}
			b[i] = byte(v)
		}
		return b, nil
	}

	if strings.HasPrefix(raw, `"`) {
		var b []byte
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			return nil, fmt.Errorf("%w: unmarshal keypair string: %v", ErrInvalidKeypair, err)
		}
		if len(b) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeypair, len(b), ed25519.PrivateKeySize)
		}
		return b, nil
	}

	b, err := base58.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: base58: %v", ErrInvalidKeypair, err)
	}
	if len(b) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeypair, len(b), ed25519.PrivateKeySize)
	}
	return b, nil
}

// EncodeKeypair renders the secret key as a solana-keygen JSON array.
func EncodeKeypair(acc types.Account) ([]byte, error) {
	if len(acc.PrivateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeypair, len(acc.PrivateKey), ed25519.PrivateKeySize)
	}
	ints := make([]int, len(acc.PrivateKey))
	for i, b := range acc.PrivateKey {
		ints[i] = int(b)
	}
	return json.Marshal(ints)
}

func ReadKeypairFile(path string) (types.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Account{}, err
	}
	acc, err := DecodeKeypair(data)
	if err != nil {
		return types.Account{}, fmt.Errorf("%s: %w", path, err)
	}
	return acc, nil
}

// WriteKeypairFile persists acc with owner-only permissions.
func WriteKeypairFile(path string, acc types.Account) error {
	data, err := EncodeKeypair(acc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write keypair %s: %w", path, err)
	}
	return nil
}
