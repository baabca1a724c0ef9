// internal/infra/solana/metaplex_instructions.go
package solana

import (
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/types"
)

// The SDK numbers VerifyCollection / VerifySizedCollectionItem but ships no
// builder for either; both carry only the instruction byte.

type verifyCollectionParam struct {
	Metadata                common.PublicKey // member metadata
	CollectionAuthority     common.PublicKey
	Payer                   common.PublicKey
	CollectionMint          common.PublicKey
	Collection              common.PublicKey // collection metadata
	CollectionMasterEdition common.PublicKey
	Sized                   bool
}

// Accounts:
// 0. [writable] metadata
// 1. [writable,signer] collection update authority
// 2. [writable,signer] payer
// 3. [] collection mint
// 4. [] collection metadata (writable when sized)
// 5. [] collection master edition
func verifyCollection(p verifyCollectionParam) types.Instruction {
	ix := token_metadata.InstructionVerifyCollection
	if p.Sized {
		ix = token_metadata.InstructionVerifySizedCollectionItem
	}
	return types.Instruction{
		ProgramID: common.MetaplexTokenMetaProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: p.Metadata, IsSigner: false, IsWritable: true},
			{PubKey: p.CollectionAuthority, IsSigner: true, IsWritable: true},
			{PubKey: p.Payer, IsSigner: true, IsWritable: true},
			{PubKey: p.CollectionMint, IsSigner: false, IsWritable: false},
			{PubKey: p.Collection, IsSigner: false, IsWritable: p.Sized},
			{PubKey: p.CollectionMasterEdition, IsSigner: false, IsWritable: false},
		},
		Data: []byte{byte(ix)},
	}
}

// sizedCollectionDetails marks a fresh collection whose size the program tracks.
func sizedCollectionDetails() *token_metadata.CollectionDetails {
	return &token_metadata.CollectionDetails{
		Enum: 0,
		V1:   token_metadata.CollectionDetailsV1{Size: 0},
	}
}
