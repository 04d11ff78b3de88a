package token2022

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// TokenMetadata is the variable-length mint extension holding the token's
// name, symbol, and URI. The body is not a fixed layout: each text field
// is a u32 little-endian length followed by that many bytes of UTF-8, in
// declared order. TokenMetadata therefore has no place in the fixed-size
// registry lookup; use GetTokenMetadata or DecodeTokenMetadata.
type TokenMetadata struct {
	// UpdateAuthority can update the metadata. Zero means the metadata is
	// immutable.
	UpdateAuthority solana.PublicKey
	// Mint the metadata belongs to.
	Mint solana.PublicKey
	// Name is the long-form token name.
	Name string
	// Symbol is the ticker symbol.
	Symbol string
	// Uri points at richer off-chain metadata.
	Uri string
}

// DecodeTokenMetadata decodes a TokenMetadata extension body.
//
// Only the declared fields are read; any trailing bytes (the additional
// key-value metadata vector) are ignored, though they still count against
// the record's declared length. A body too short for its own length
// prefixes reports ErrInvalidMetadata.
func DecodeTokenMetadata(body []byte) (TokenMetadata, error) {
	var meta TokenMetadata
	if err := bin.NewBorshDecoder(body).Decode(&meta); err != nil {
		return TokenMetadata{}, &DecodeError{Type: ExtensionTokenMetadata, Err: ErrInvalidMetadata}
	}
	return meta, nil
}

// GetTokenMetadata locates and decodes the token metadata extension of a
// mint account.
func GetTokenMetadata(account Account) (TokenMetadata, error) {
	body, err := ExtensionBytes(account, ExtensionTokenMetadata)
	if err != nil {
		return TokenMetadata{}, err
	}
	return DecodeTokenMetadata(body)
}
