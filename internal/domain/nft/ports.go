// internal/domain/nft/ports.go

//go:generate mockgen -destination mock_nft/mock_nft.go github.com/ZYJLiu/token-metadata/internal/domain/nft LedgerPort,StoragePort
package nft

import (
	"context"
	"strings"
)

// ========================================
// Inputs / results (contract only)
// ========================================

type CreateNFTInput struct {
	URI                  string
	Name                 string
	Symbol               string
	SellerFeeBasisPoints uint16

	Decimals  uint8
	Amount    uint64
	MaxSupply *uint64 // nil = unlimited prints

	IsCollection      bool
	IsSizedCollection bool   // only meaningful with IsCollection
	CollectionMint    string // member tokens only
}

func (in CreateNFTInput) Validate() error {
	if err := validateName(in.Name); err != nil {
		return err
	}
	if len(strings.TrimSpace(in.Symbol)) > MaxSymbolLength {
		return ErrInvalidSymbol
	}
	uri := strings.TrimSpace(in.URI)
	if uri == "" || len(uri) > MaxURILength {
		return ErrInvalidURI
	}
	if in.SellerFeeBasisPoints > MaxSellerFeeBasisPts {
		return ErrInvalidSellerFee
	}
	if in.Amount == 0 {
		return ErrInvalidAmount
	}
	if in.CollectionMint != "" && !IsValidPubkey(in.CollectionMint) {
		return ErrInvalidMintAddress
	}
	return nil
}

type VerifyCollectionInput struct {
	MintAddress           string
	CollectionMintAddress string
	IsSizedCollection     bool
}

func (in VerifyCollectionInput) Validate() error {
	if !IsValidPubkey(in.MintAddress) || !IsValidPubkey(in.CollectionMintAddress) {
		return ErrInvalidMintAddress
	}
	return nil
}

type VerifyCollectionResult struct {
	MintAddress           string
	CollectionMintAddress string
	Signature             string
	AlreadyVerified       bool // no transaction was sent
}

type UpdateNFTInput struct {
	Token Token
	Name  string
}

func (in UpdateNFTInput) Validate() error {
	if !IsValidPubkey(in.Token.MintAddress) {
		return ErrInvalidMintAddress
	}
	return validateName(in.Name)
}

type UpdateNFTResult struct {
	MintAddress string
	Name        string
	Signature   string
}

// ========================================
// Ports
// ========================================

// LedgerPort is the on-chain side of the mint workflow. Every method
// returns only after the transaction it sent is confirmed.
type LedgerPort interface {
	// Payer returns the base58 public key signing every operation.
	Payer() string
	CreateNFT(ctx context.Context, in CreateNFTInput) (Token, error)
	VerifyCollection(ctx context.Context, in VerifyCollectionInput) (VerifyCollectionResult, error)
	UpdateNFT(ctx context.Context, in UpdateNFTInput) (UpdateNFTResult, error)
}

// StoragePort uploads a file to remote storage and returns its public URI.
type StoragePort interface {
	Upload(ctx context.Context, f File) (string, error)
}
