// internal/infra/solana/nft_mint.go
package solana

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
	"go.uber.org/zap"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
)

var (
	ErrMintClientNotConfigured = errors.New("mint_client: not configured")
	ErrMetadataNotFound        = errors.New("mint_client: metadata account not found")
	ErrNotUpdateAuthority      = errors.New("mint_client: payer is not the update authority")
	ErrNotCollectionMember     = errors.New("mint_client: token was not created for this collection")
	ErrImmutableMetadata       = errors.New("mint_client: metadata is immutable")
)

// MintClient creates, verifies and updates Metaplex NFTs with a single
// payer that is also mint, update and collection authority.
type MintClient struct {
	sender *TxSender
	payer  types.Account
	log    *zap.Logger

	// newMint generates the mint keypair of each created token.
	newMint func() types.Account
}

var _ nftdom.LedgerPort = (*MintClient)(nil)

func NewMintClient(sender *TxSender, payer types.Account, log *zap.Logger) *MintClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &MintClient{
		sender:  sender,
		payer:   payer,
		log:     log.Named("solana.mint"),
		newMint: types.NewAccount,
	}
}

func (c *MintClient) Payer() string {
	if c == nil {
		return ""
	}
	return c.payer.PublicKey.ToBase58()
}

// mintAddresses are the accounts derived from a mint pubkey.
type mintAddresses struct {
	Mint          common.PublicKey
	Metadata      common.PublicKey
	MasterEdition common.PublicKey
	TokenAccount  common.PublicKey
}

func deriveMintAddresses(owner, mint common.PublicKey) (mintAddresses, error) {
	ata, _, err := common.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return mintAddresses{}, fmt.Errorf("FindAssociatedTokenAddress: %w", err)
	}
	metadataPubkey, err := token_metadata.GetTokenMetaPubkey(mint)
	if err != nil {
		return mintAddresses{}, fmt.Errorf("GetTokenMetaPubkey: %w", err)
	}
	masterEditionPubkey, err := token_metadata.GetMasterEdition(mint)
	if err != nil {
		return mintAddresses{}, fmt.Errorf("GetMasterEdition: %w", err)
	}
	return mintAddresses{
		Mint:          mint,
		Metadata:      metadataPubkey,
		MasterEdition: masterEditionPubkey,
		TokenAccount:  ata,
	}, nil
}

// CreateNFT mints a new token to the payer in one transaction:
// mint account, metadata, ATA, supply and master edition.
func (c *MintClient) CreateNFT(ctx context.Context, in nftdom.CreateNFTInput) (nftdom.Token, error) {
	if c == nil || c.sender == nil || c.sender.RPC == nil {
		return nftdom.Token{}, ErrMintClientNotConfigured
	}
	if err := in.Validate(); err != nil {
		return nftdom.Token{}, err
	}

	feePayer := c.payer
	mint := c.newMint()

	addrs, err := deriveMintAddresses(feePayer.PublicKey, mint.PublicKey)
	if err != nil {
		return nftdom.Token{}, err
	}

	mintRent, err := c.sender.RPC.GetMinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return nftdom.Token{}, fmt.Errorf("GetMinimumBalanceForRentExemption: %w", err)
	}

	ins := buildCreateNFTInstructions(feePayer.PublicKey, addrs, mintRent, in)

	label := "create_nft"
	if in.IsCollection {
		label = "create_collection"
	}
	sig, err := c.sender.Send(ctx, label, []types.Account{feePayer, mint}, ins)
	if err != nil {
		return nftdom.Token{}, err
	}

	t := nftdom.Token{
		MintAddress:          addrs.Mint.ToBase58(),
		MetadataAddress:      addrs.Metadata.ToBase58(),
		MasterEditionAddress: addrs.MasterEdition.ToBase58(),
		TokenAccount:         addrs.TokenAccount.ToBase58(),
		Owner:                feePayer.PublicKey.ToBase58(),
		URI:                  strings.TrimSpace(in.URI),
		Name:                 strings.TrimSpace(in.Name),
		Symbol:               strings.TrimSpace(in.Symbol),
		SellerFeeBasisPoints: in.SellerFeeBasisPoints,
		IsCollection:         in.IsCollection,
		CollectionMint:       strings.TrimSpace(in.CollectionMint),
		Signature:            sig,
	}
	c.log.Debug("minted", zap.String("mint", t.MintAddress), zap.String("tx", maskShort(sig)))
	return t, nil
}

func buildCreateNFTInstructions(
	payer common.PublicKey,
	addrs mintAddresses,
	mintRent uint64,
	in nftdom.CreateNFTInput,
) []types.Instruction {
	data := token_metadata.DataV2{
		Name:                 strings.TrimSpace(in.Name),
		Symbol:               strings.TrimSpace(in.Symbol),
		Uri:                  strings.TrimSpace(in.URI),
		SellerFeeBasisPoints: in.SellerFeeBasisPoints,
		Creators: &[]token_metadata.Creator{
			{Address: payer, Verified: true, Share: 100},
		},
	}
	if cm := strings.TrimSpace(in.CollectionMint); cm != "" {
		data.Collection = &token_metadata.Collection{
			Verified: false,
			Key:      common.PublicKeyFromString(cm),
		}
	}

	var details *token_metadata.CollectionDetails
	if in.IsCollection && in.IsSizedCollection {
		details = sizedCollectionDetails()
	}

	return []types.Instruction{
		system.CreateAccount(system.CreateAccountParam{
			From:     payer,
			New:      addrs.Mint,
			Owner:    common.TokenProgramID,
			Lamports: mintRent,
			Space:    token.MintAccountSize,
		}),
		token.InitializeMint(token.InitializeMintParam{
			Decimals:   in.Decimals,
			Mint:       addrs.Mint,
			MintAuth:   payer,
			FreezeAuth: &payer,
		}),
		token_metadata.CreateMetadataAccountV3(token_metadata.CreateMetadataAccountV3Param{
			Metadata:                addrs.Metadata,
			Mint:                    addrs.Mint,
			MintAuthority:           payer,
			Payer:                   payer,
			UpdateAuthority:         payer,
			UpdateAuthorityIsSigner: true,
			IsMutable:               true,
			Data:                    data,
			CollectionDetails:       details,
		}),
		associated_token_account.CreateAssociatedTokenAccount(
			associated_token_account.CreateAssociatedTokenAccountParam{
				Funder:                 payer,
				Owner:                  payer,
				Mint:                   addrs.Mint,
				AssociatedTokenAccount: addrs.TokenAccount,
			},
		),
		token.MintTo(token.MintToParam{
			Mint:   addrs.Mint,
			To:     addrs.TokenAccount,
			Auth:   payer,
			Amount: in.Amount,
		}),
		token_metadata.CreateMasterEditionV3(
			token_metadata.CreateMasterEditionParam{
				Edition:         addrs.MasterEdition,
				Mint:            addrs.Mint,
				UpdateAuthority: payer,
				MintAuthority:   payer,
				Metadata:        addrs.Metadata,
				Payer:           payer,
				MaxSupply:       in.MaxSupply,
			},
		),
	}
}

// VerifyCollection flags the member's collection as verified. A member
// already verified against the same collection is left untouched.
func (c *MintClient) VerifyCollection(ctx context.Context, in nftdom.VerifyCollectionInput) (nftdom.VerifyCollectionResult, error) {
	if c == nil || c.sender == nil || c.sender.RPC == nil {
		return nftdom.VerifyCollectionResult{}, ErrMintClientNotConfigured
	}
	if err := in.Validate(); err != nil {
		return nftdom.VerifyCollectionResult{}, err
	}

	res := nftdom.VerifyCollectionResult{
		MintAddress:           strings.TrimSpace(in.MintAddress),
		CollectionMintAddress: strings.TrimSpace(in.CollectionMintAddress),
	}
	member, err := deriveMintAddresses(c.payer.PublicKey, common.PublicKeyFromString(res.MintAddress))
	if err != nil {
		return res, err
	}
	collection, err := deriveMintAddresses(c.payer.PublicKey, common.PublicKeyFromString(res.CollectionMintAddress))
	if err != nil {
		return res, err
	}

	md, err := c.fetchMetadata(ctx, member.Metadata)
	if err != nil {
		return res, err
	}
	if md.Collection == nil || md.Collection.Key != collection.Mint {
		return res, fmt.Errorf("%w: mint=%s collection=%s", ErrNotCollectionMember, res.MintAddress, res.CollectionMintAddress)
	}
	if md.Collection.Verified {
		res.AlreadyVerified = true
		c.log.Info("collection already verified; skipping",
			zap.String("mint", res.MintAddress),
			zap.String("collection", res.CollectionMintAddress),
		)
		return res, nil
	}

	ix := verifyCollection(verifyCollectionParam{
		Metadata:                member.Metadata,
		CollectionAuthority:     c.payer.PublicKey,
		Payer:                   c.payer.PublicKey,
		CollectionMint:          collection.Mint,
		Collection:              collection.Metadata,
		CollectionMasterEdition: collection.MasterEdition,
		Sized:                   in.IsSizedCollection,
	})
	sig, err := c.sender.Send(ctx, "verify_collection", []types.Account{c.payer}, []types.Instruction{ix})
	if err != nil {
		return res, err
	}
	res.Signature = sig
	return res, nil
}

// UpdateNFT renames the token, keeping every other on-chain field.
func (c *MintClient) UpdateNFT(ctx context.Context, in nftdom.UpdateNFTInput) (nftdom.UpdateNFTResult, error) {
	if c == nil || c.sender == nil || c.sender.RPC == nil {
		return nftdom.UpdateNFTResult{}, ErrMintClientNotConfigured
	}
	if err := in.Validate(); err != nil {
		return nftdom.UpdateNFTResult{}, err
	}

	mintAddr := strings.TrimSpace(in.Token.MintAddress)
	addrs, err := deriveMintAddresses(c.payer.PublicKey, common.PublicKeyFromString(mintAddr))
	if err != nil {
		return nftdom.UpdateNFTResult{}, err
	}

	md, err := c.fetchMetadata(ctx, addrs.Metadata)
	if err != nil {
		return nftdom.UpdateNFTResult{}, err
	}
	if md.UpdateAuthority != c.payer.PublicKey {
		return nftdom.UpdateNFTResult{}, fmt.Errorf("%w: authority=%s payer=%s",
			ErrNotUpdateAuthority, md.UpdateAuthority.ToBase58(), c.payer.PublicKey.ToBase58())
	}
	if !md.IsMutable {
		return nftdom.UpdateNFTResult{}, ErrImmutableMetadata
	}

	name := strings.TrimSpace(in.Name)
	data := dataV2FromMetadata(md)
	data.Name = name

	ix := token_metadata.UpdateMetadataAccountV2(token_metadata.UpdateMetadataAccountV2Param{
		MetadataAccount: addrs.Metadata,
		UpdateAuthority: c.payer.PublicKey,
		Data:            &data,
	})
	sig, err := c.sender.Send(ctx, "update_nft", []types.Account{c.payer}, []types.Instruction{ix})
	if err != nil {
		return nftdom.UpdateNFTResult{}, err
	}
	return nftdom.UpdateNFTResult{MintAddress: mintAddr, Name: name, Signature: sig}, nil
}

func (c *MintClient) fetchMetadata(ctx context.Context, metadata common.PublicKey) (token_metadata.Metadata, error) {
	info, err := c.sender.RPC.GetAccountInfoWithConfig(ctx, metadata.ToBase58(), client.GetAccountInfoConfig{
		Commitment: readCommitment,
	})
	if err != nil {
		return token_metadata.Metadata{}, fmt.Errorf("GetAccountInfo %s: %w", metadata.ToBase58(), err)
	}
	if len(info.Data) == 0 {
		return token_metadata.Metadata{}, fmt.Errorf("%w: %s", ErrMetadataNotFound, metadata.ToBase58())
	}
	md, err := token_metadata.MetadataDeserialize(info.Data)
	if err != nil {
		return token_metadata.Metadata{}, fmt.Errorf("MetadataDeserialize: %w", err)
	}
	return md, nil
}

// dataV2FromMetadata copies the on-chain fields an update must resend.
func dataV2FromMetadata(md token_metadata.Metadata) token_metadata.DataV2 {
	return token_metadata.DataV2{
		Name:                 md.Data.Name,
		Symbol:               md.Data.Symbol,
		Uri:                  md.Data.Uri,
		SellerFeeBasisPoints: md.Data.SellerFeeBasisPoints,
		Creators:             md.Data.Creators,
		Collection:           md.Collection,
		Uses:                 md.Uses,
	}
}
