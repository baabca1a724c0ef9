// internal/domain/nft/entity.go
package nft

import (
	"errors"
	"strings"

	"github.com/mr-tron/base58"
)

// Token is the descriptor of a minted NFT (collection or member).
// Member tokens reference their collection by mint address only.
type Token struct {
	MintAddress          string // base58, 32-byte pubkey
	MetadataAddress      string // metadata PDA of the mint
	MasterEditionAddress string
	TokenAccount         string // associated token account of Owner
	Owner                string

	URI                  string
	Name                 string
	Symbol               string
	SellerFeeBasisPoints uint16

	IsCollection   bool
	CollectionMint string // empty unless the token belongs to a collection

	Signature string // creation transaction
}

// File is a binary asset handed to a storage backend.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Errors
var (
	ErrInvalidMintAddress = errors.New("nft: invalid mintAddress")
	ErrInvalidName        = errors.New("nft: invalid name")
	ErrInvalidSymbol      = errors.New("nft: invalid symbol")
	ErrInvalidURI         = errors.New("nft: invalid uri")
	ErrInvalidSellerFee   = errors.New("nft: invalid sellerFeeBasisPoints")
	ErrInvalidAmount      = errors.New("nft: invalid amount")
	ErrCollectionMismatch = errors.New("nft: member does not reference collection")
	ErrEmptyFile          = errors.New("nft: file is empty")
)

// Policy (mirrors the token-metadata program limits)
const (
	MaxNameLength        = 32
	MaxSymbolLength      = 10
	MaxURILength         = 200
	MaxSellerFeeBasisPts = 10000
	PubkeyLength         = 32
)

// Validation

// BelongsTo reports whether the token references the given collection mint.
func (t Token) BelongsTo(collection Token) bool {
	c := strings.TrimSpace(t.CollectionMint)
	return c != "" && c == strings.TrimSpace(collection.MintAddress)
}

func (f File) Validate() error {
	if len(f.Data) == 0 {
		return ErrEmptyFile
	}
	return nil
}

// Helpers

// IsValidPubkey reports whether s decodes to a 32-byte base58 public key.
func IsValidPubkey(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	b, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(b) == PubkeyLength
}

func validateName(name string) error {
	n := strings.TrimSpace(name)
	if n == "" || len(n) > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}
