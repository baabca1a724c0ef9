// internal/application/usecase/mint_config.go
package usecase

// MintConfig carries the token constants of a mint run.
type MintConfig struct {
	Name        string
	Description string
	Symbol      string
	Decimals    uint8
	Amount      uint64

	CollectionName       string
	MemberName           string
	UpdatedName          string
	SellerFeeBasisPoints uint16

	// SizedCollection creates the collection with size tracking and
	// verifies members through the sized instruction.
	SizedCollection bool
	// MaxSupply of the master editions; nil means unlimited prints.
	MaxSupply *uint64
}

// DefaultMintConfig returns the literals the runner mints with.
func DefaultMintConfig() MintConfig {
	zero := uint64(0)
	return MintConfig{
		Name:                 "Token Name",
		Description:          "Description",
		Symbol:               "SYMBOL",
		Decimals:             0,
		Amount:               1,
		CollectionName:       "Collection",
		MemberName:           "NFT",
		UpdatedName:          "Updated Name",
		SellerFeeBasisPoints: 0,
		SizedCollection:      true,
		MaxSupply:            &zero,
	}
}
