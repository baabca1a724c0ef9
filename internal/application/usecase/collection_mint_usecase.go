// internal/application/usecase/collection_mint_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
)

var ErrUsecaseNotInitialized = errors.New("collection mint usecase is not properly initialized")

// ============================================================
// RunResult
// ============================================================

// RunResult collects every record produced by a mint run.
type RunResult struct {
	Payer        string
	ImageURI     string
	MetadataURI  string
	Collection   nftdom.Token
	Member       nftdom.Token
	Verification nftdom.VerifyCollectionResult
	Update       nftdom.UpdateNFTResult
}

// ============================================================
// CollectionMintUsecase
// ============================================================

type CollectionMintUsecase struct {
	ledger   nftdom.LedgerPort
	storage  nftdom.StoragePort
	metadata *TokenMetadataBuilder
	cfg      MintConfig
	log      *zap.Logger
}

func NewCollectionMintUsecase(
	ledger nftdom.LedgerPort,
	storage nftdom.StoragePort,
	cfg MintConfig,
	log *zap.Logger,
) *CollectionMintUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CollectionMintUsecase{
		ledger:   ledger,
		storage:  storage,
		metadata: NewTokenMetadataBuilder(),
		cfg:      cfg,
		log:      log.Named("usecase"),
	}
}

// Run uploads the asset and its metadata, then creates a collection and a
// member token, verifies the membership and renames the member.
// Steps run strictly in order; the first failure aborts the run.
func (u *CollectionMintUsecase) Run(ctx context.Context, asset nftdom.File) (*RunResult, error) {
	if u == nil || u.ledger == nil || u.storage == nil {
		return nil, ErrUsecaseNotInitialized
	}
	if err := asset.Validate(); err != nil {
		return nil, fmt.Errorf("asset %q: %w", asset.Name, err)
	}

	res := &RunResult{Payer: u.ledger.Payer()}
	u.log.Info("PublicKey", zap.String("pubkey", res.Payer))

	// 1) image
	imageURI, err := u.storage.Upload(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	res.ImageURI = imageURI
	u.log.Info("image uri", zap.String("uri", imageURI))

	// 2) off-chain metadata
	doc, err := u.metadata.Build(u.cfg, asset, imageURI)
	if err != nil {
		return nil, err
	}
	metaFile, err := u.metadata.Encode(doc)
	if err != nil {
		return nil, err
	}
	metadataURI, err := u.storage.Upload(ctx, metaFile)
	if err != nil {
		return nil, fmt.Errorf("upload metadata: %w", err)
	}
	res.MetadataURI = metadataURI
	u.log.Info("metadata uri", zap.String("uri", metadataURI))

	// 3) collection
	collection, err := u.ledger.CreateNFT(ctx, nftdom.CreateNFTInput{
		URI:                  metadataURI,
		Name:                 u.cfg.CollectionName,
		SellerFeeBasisPoints: u.cfg.SellerFeeBasisPoints,
		Decimals:             u.cfg.Decimals,
		Amount:               u.cfg.Amount,
		MaxSupply:            u.cfg.MaxSupply,
		IsCollection:         true,
		IsSizedCollection:    u.cfg.SizedCollection,
	})
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	res.Collection = collection
	u.logToken("collection created", collection)

	// 4) member
	member, err := u.ledger.CreateNFT(ctx, nftdom.CreateNFTInput{
		URI:                  metadataURI,
		Name:                 u.cfg.MemberName,
		Symbol:               u.cfg.Symbol,
		SellerFeeBasisPoints: u.cfg.SellerFeeBasisPoints,
		Decimals:             u.cfg.Decimals,
		Amount:               u.cfg.Amount,
		MaxSupply:            u.cfg.MaxSupply,
		CollectionMint:       collection.MintAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	// The ledger may echo the collection it wrote or leave it blank; only a
	// different non-empty reference is a mismatch.
	if member.CollectionMint == "" {
		member.CollectionMint = collection.MintAddress
	} else if !member.BelongsTo(collection) {
		res.Member = member
		return res, fmt.Errorf("%w: member=%s collection=%s got=%s",
			nftdom.ErrCollectionMismatch, member.MintAddress, collection.MintAddress, member.CollectionMint)
	}
	res.Member = member
	u.logToken("member created", member)

	// 5) verify membership
	verify, err := u.ledger.VerifyCollection(ctx, nftdom.VerifyCollectionInput{
		MintAddress:           member.MintAddress,
		CollectionMintAddress: collection.MintAddress,
		IsSizedCollection:     u.cfg.SizedCollection,
	})
	if err != nil {
		return res, fmt.Errorf("verify collection: %w", err)
	}
	res.Verification = verify
	u.log.Info("collection verified",
		zap.String("mint", verify.MintAddress),
		zap.String("collection", verify.CollectionMintAddress),
		zap.String("signature", verify.Signature),
		zap.Bool("alreadyVerified", verify.AlreadyVerified),
	)

	// 6) rename member
	update, err := u.ledger.UpdateNFT(ctx, nftdom.UpdateNFTInput{
		Token: member,
		Name:  u.cfg.UpdatedName,
	})
	if err != nil {
		return res, fmt.Errorf("update member: %w", err)
	}
	res.Update = update
	u.log.Info("member updated",
		zap.String("mint", update.MintAddress),
		zap.String("name", update.Name),
		zap.String("signature", update.Signature),
	)

	return res, nil
}

func (u *CollectionMintUsecase) logToken(msg string, t nftdom.Token) {
	u.log.Info(msg,
		zap.String("mint", t.MintAddress),
		zap.String("metadata", t.MetadataAddress),
		zap.String("masterEdition", t.MasterEditionAddress),
		zap.String("tokenAccount", t.TokenAccount),
		zap.String("name", t.Name),
		zap.String("symbol", t.Symbol),
		zap.String("uri", t.URI),
		zap.Uint16("sellerFeeBasisPoints", t.SellerFeeBasisPoints),
		zap.Bool("isCollection", t.IsCollection),
		zap.String("collection", t.CollectionMint),
		zap.String("signature", t.Signature),
	)
}
