// internal/domain/nft/entity_test.go
package nft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	mintA = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	mintB = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
)

func TestIsValidPubkey(t *testing.T) {
	assert.True(t, IsValidPubkey(mintA))
	assert.True(t, IsValidPubkey("  "+mintB+" "))
	assert.True(t, IsValidPubkey("11111111111111111111111111111111"))
	assert.False(t, IsValidPubkey(""))
	assert.False(t, IsValidPubkey("MINT_A"))
	assert.False(t, IsValidPubkey("0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl"))
	assert.False(t, IsValidPubkey("abc"))
}

func TestToken_BelongsTo(t *testing.T) {
	collection := Token{MintAddress: mintA, Name: "Collection", IsCollection: true}

	assert.True(t, Token{MintAddress: mintB, CollectionMint: mintA}.BelongsTo(collection))
	assert.False(t, Token{MintAddress: mintB}.BelongsTo(collection))
	assert.False(t, Token{MintAddress: mintB, CollectionMint: mintB}.BelongsTo(collection))
	assert.False(t, Token{MintAddress: mintB}.BelongsTo(Token{}))
}

func TestCreateNFTInput_Validate(t *testing.T) {
	valid := CreateNFTInput{URI: "https://example.com/meta.json", Name: "NFT", Symbol: "SYMBOL", Amount: 1}
	assert.NoError(t, valid.Validate())

	t.Run("name too long", func(t *testing.T) {
		in := valid
		in.Name = "0123456789012345678901234567890123"
		assert.ErrorIs(t, in.Validate(), ErrInvalidName)
	})
	t.Run("symbol too long", func(t *testing.T) {
		in := valid
		in.Symbol = "SYMBOLSYMBOL"
		assert.ErrorIs(t, in.Validate(), ErrInvalidSymbol)
	})
	t.Run("empty uri", func(t *testing.T) {
		in := valid
		in.URI = ""
		assert.ErrorIs(t, in.Validate(), ErrInvalidURI)
	})
	t.Run("royalty out of range", func(t *testing.T) {
		in := valid
		in.SellerFeeBasisPoints = 10001
		assert.ErrorIs(t, in.Validate(), ErrInvalidSellerFee)
	})
	t.Run("zero amount", func(t *testing.T) {
		in := valid
		in.Amount = 0
		assert.ErrorIs(t, in.Validate(), ErrInvalidAmount)
	})
	t.Run("bad collection", func(t *testing.T) {
		in := valid
		in.CollectionMint = "MINT_A"
		assert.ErrorIs(t, in.Validate(), ErrInvalidMintAddress)
	})
}

func TestFile_Validate(t *testing.T) {
	assert.ErrorIs(t, File{Name: "a.gif"}.Validate(), ErrEmptyFile)
	assert.NoError(t, File{Name: "a.gif", Data: []byte{1}}.Validate())
}
