// internal/domain/nft/metadata.go
package nft

import "strings"

// MetadataDocument is the off-chain JSON a token URI points to.
type MetadataDocument struct {
	Name        string              `json:"name"`
	Symbol      string              `json:"symbol,omitempty"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Properties  *MetadataProperties `json:"properties,omitempty"`
}

type MetadataProperties struct {
	Category string         `json:"category,omitempty"`
	Files    []MetadataFile `json:"files,omitempty"`
}

type MetadataFile struct {
	URI  string `json:"uri"`
	Type string `json:"type,omitempty"`
}

func (d MetadataDocument) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(d.Image) == "" {
		return ErrInvalidURI
	}
	return nil
}
