package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// MetadataPointer is the mint extension pointing at the account that holds
// the mint's metadata. The pointer may reference the mint itself, in which
// case the metadata lives in the mint's own TokenMetadata extension.
type MetadataPointer struct {
	// Authority can update the pointer.
	Authority solana.PublicKey
	// MetadataAddress holds the metadata.
	MetadataAddress solana.PublicKey
}

// ExtensionType returns the wire type code.
func (MetadataPointer) ExtensionType() ExtensionType { return ExtensionMetadataPointer }

// GroupPointer is the mint extension pointing at the account that holds
// the mint's group configuration.
type GroupPointer struct {
	// Authority can update the pointer.
	Authority solana.PublicKey
	// GroupAddress holds the group configuration.
	GroupAddress solana.PublicKey
}

// ExtensionType returns the wire type code.
func (GroupPointer) ExtensionType() ExtensionType { return ExtensionGroupPointer }

// GroupMemberPointer is the mint extension pointing at the account that
// holds the mint's group membership.
type GroupMemberPointer struct {
	// Authority can update the pointer.
	Authority solana.PublicKey
	// MemberAddress holds the membership configuration.
	MemberAddress solana.PublicKey
}

// ExtensionType returns the wire type code.
func (GroupMemberPointer) ExtensionType() ExtensionType { return ExtensionGroupMemberPointer }

// TokenGroup is the mint extension holding a token group's configuration.
type TokenGroup struct {
	// UpdateAuthority can add members and change the maximum size. Zero
	// means the group is immutable.
	UpdateAuthority solana.PublicKey
	// Mint is the group's mint.
	Mint solana.PublicKey
	// Size is the current member count.
	Size uint64
	// MaxSize caps the member count.
	MaxSize uint64
}

// ExtensionType returns the wire type code.
func (TokenGroup) ExtensionType() ExtensionType { return ExtensionTokenGroup }

// TokenGroupMember is the mint extension recording a mint's membership in
// a token group.
type TokenGroupMember struct {
	// Mint is the member's mint.
	Mint solana.PublicKey
	// Group is the group's mint.
	Group solana.PublicKey
	// MemberNumber is the member's index within the group.
	MemberNumber uint64
}

// ExtensionType returns the wire type code.
func (TokenGroupMember) ExtensionType() ExtensionType { return ExtensionTokenGroupMember }
