// internal/application/usecase/token_metadata_builder.go
package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
)

const metadataFileName = "metadata.json"

// TokenMetadataBuilder builds the off-chain metadata document for a mint run.
type TokenMetadataBuilder struct{}

func NewTokenMetadataBuilder() *TokenMetadataBuilder {
	return &TokenMetadataBuilder{}
}

// Build assembles the document from the mint config and the uploaded image.
func (b *TokenMetadataBuilder) Build(cfg MintConfig, image nftdom.File, imageURI string) (nftdom.MetadataDocument, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nftdom.MetadataDocument{}, fmt.Errorf("build metadata: %w", nftdom.ErrInvalidName)
	}
	uri := strings.TrimSpace(imageURI)
	if uri == "" {
		return nftdom.MetadataDocument{}, fmt.Errorf("build metadata: image %w", nftdom.ErrInvalidURI)
	}

	doc := nftdom.MetadataDocument{
		Name:        name,
		Description: strings.TrimSpace(cfg.Description),
		Image:       uri,
		Properties: &nftdom.MetadataProperties{
			Category: "image",
			Files: []nftdom.MetadataFile{
				{URI: uri, Type: strings.TrimSpace(image.ContentType)},
			},
		},
	}
	return doc, nil
}

// Encode serializes the document into the file uploaded to storage.
func (b *TokenMetadataBuilder) Encode(doc nftdom.MetadataDocument) (nftdom.File, error) {
	if err := doc.Validate(); err != nil {
		return nftdom.File{}, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nftdom.File{}, fmt.Errorf("marshal metadata: %w", err)
	}
	return nftdom.File{
		Name:        metadataFileName,
		ContentType: "application/json",
		Data:        data,
	}, nil
}
