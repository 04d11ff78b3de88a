package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// Base record layout constants. Extensions are appended after the fixed
// base record; mints additionally carry padding so that an extended mint
// can never be mistaken for a multisig account.
const (
	// MintLen is the size of the fixed mint base record.
	MintLen = 82

	// TokenAccountLen is the size of the fixed token account base record.
	TokenAccountLen = 165

	// extensionsPadding pads mint records up to the token account size.
	extensionsPadding = 83

	// extensionStartOffset skips the account-type byte that precedes the
	// first extension record.
	extensionStartOffset = 1

	// extensionHeaderLen is the record header size: 2-byte type code plus
	// 2-byte body length, both little-endian.
	extensionHeaderLen = 4
)

// extensionRegionStart returns the offset of the first extension record
// header within account data of the given base kind.
func extensionRegionStart(kind BaseKind) int {
	if kind == MintKind {
		return MintLen + extensionsPadding + extensionStartOffset
	}
	return TokenAccountLen + extensionStartOffset
}

// AccountState is the lifecycle state of a token account.
type AccountState uint8

const (
	// AccountStateUninitialized marks an account that has not been set up.
	AccountStateUninitialized AccountState = iota

	// AccountStateInitialized marks a usable account.
	AccountStateInitialized

	// AccountStateFrozen marks an account frozen by the mint's freeze
	// authority.
	AccountStateFrozen
)

// AuthorityType selects which authority a SetAuthority instruction
// replaces.
type AuthorityType uint8

const (
	// AuthorityMintTokens controls minting.
	AuthorityMintTokens AuthorityType = iota

	// AuthorityFreezeAccount controls freezing and thawing accounts.
	AuthorityFreezeAccount

	// AuthorityAccountOwner controls the token account itself.
	AuthorityAccountOwner

	// AuthorityCloseAccount controls closing the account.
	AuthorityCloseAccount
)

// Account is the read-only view of an on-chain account supplied by the
// caller. Implementations own the byte buffer; this library never mutates
// it and decoded values remain valid after the buffer is released.
type Account interface {
	// Owner returns the program that owns the account.
	Owner() solana.PublicKey

	// Data returns the raw account data: base record, padding, and the
	// extension region.
	Data() []byte
}

// DataAccount is a minimal Account implementation over a raw byte slice.
type DataAccount struct {
	AccountOwner solana.PublicKey
	RawData      []byte
}

// Owner returns the owning program.
func (a DataAccount) Owner() solana.PublicKey {
	return a.AccountOwner
}

// Data returns the raw account data.
func (a DataAccount) Data() []byte {
	return a.RawData
}
