// internal/infra/asset/loader.go
package asset

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
)

// DefaultPath is resolved against the working directory.
const DefaultPath = "assets/update.gif"

// Load reads the asset at path into a File. The content type comes from
// the extension, or from sniffing the first bytes when unknown.
func Load(path string) (nftdom.File, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		p = DefaultPath
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nftdom.File{}, fmt.Errorf("read asset: %w", err)
	}
	f := nftdom.File{
		Name:        filepath.Base(p),
		ContentType: ContentType(p, data),
		Data:        data,
	}
	if err := f.Validate(); err != nil {
		return nftdom.File{}, fmt.Errorf("asset %s: %w", p, err)
	}
	return f, nil
}

func ContentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
