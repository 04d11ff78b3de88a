package token2022

import (
	"encoding/binary"
	"fmt"
)

// ExtensionType identifies one optional feature attached to a mint or
// token account. The on-wire representation is a little-endian uint16 in
// each TLV record header. The enumeration is closed: codes beyond
// ExtensionPausableAccount are unrecognized.
type ExtensionType uint16

const (
	// ExtensionUninitialized pads accounts whose size would otherwise
	// collide with a multisig account.
	ExtensionUninitialized ExtensionType = iota

	// ExtensionTransferFeeConfig holds transfer fee rates and the
	// authorities that can withdraw and set the fee.
	ExtensionTransferFeeConfig

	// ExtensionTransferFeeAmount holds withheld transfer fees.
	ExtensionTransferFeeAmount

	// ExtensionMintCloseAuthority holds an optional mint close authority.
	ExtensionMintCloseAuthority

	// ExtensionConfidentialTransferMint holds the auditor configuration
	// for confidential transfers.
	ExtensionConfidentialTransferMint

	// ExtensionConfidentialTransferAccount holds per-account confidential
	// transfer state.
	ExtensionConfidentialTransferAccount

	// ExtensionDefaultAccountState specifies the default state for new
	// accounts of the mint.
	ExtensionDefaultAccountState

	// ExtensionImmutableOwner marks the account owner as unchangeable.
	ExtensionImmutableOwner

	// ExtensionMemoTransfer requires inbound transfers to carry a memo.
	ExtensionMemoTransfer

	// ExtensionNonTransferable marks the mint's tokens as non-transferable.
	ExtensionNonTransferable

	// ExtensionInterestBearingConfig holds the interest accrual rate state.
	ExtensionInterestBearingConfig

	// ExtensionCpiGuard locks privileged operations from happening via CPI.
	ExtensionCpiGuard

	// ExtensionPermanentDelegate holds an optional permanent delegate.
	ExtensionPermanentDelegate

	// ExtensionNonTransferableAccount marks an account as belonging to a
	// non-transferable mint.
	ExtensionNonTransferableAccount

	// ExtensionTransferHook points transfers at a program implementing the
	// transfer hook interface.
	ExtensionTransferHook

	// ExtensionTransferHookAccount marks an account as belonging to a mint
	// with a transfer hook.
	ExtensionTransferHookAccount

	// ExtensionConfidentialTransferFeeConfig holds encrypted withheld fees
	// and the encryption key they are encrypted under.
	ExtensionConfidentialTransferFeeConfig

	// ExtensionConfidentialTransferFeeAmount holds confidential withheld
	// transfer fees.
	ExtensionConfidentialTransferFeeAmount

	// ExtensionMetadataPointer points at the account holding metadata.
	ExtensionMetadataPointer

	// ExtensionTokenMetadata holds the token metadata itself.
	ExtensionTokenMetadata

	// ExtensionGroupPointer points at the account holding group
	// configurations.
	ExtensionGroupPointer

	// ExtensionTokenGroup holds token group configurations.
	ExtensionTokenGroup

	// ExtensionGroupMemberPointer points at the account holding group
	// member configurations.
	ExtensionGroupMemberPointer

	// ExtensionTokenGroupMember holds token group member configurations.
	ExtensionTokenGroupMember

	// ExtensionConfidentialMintBurn allows minting and burning of
	// confidential tokens.
	ExtensionConfidentialMintBurn

	// ExtensionScaledUiAmount scales UI amounts by a multiplier.
	ExtensionScaledUiAmount

	// ExtensionPausable allows minting, burning, and transferring to be
	// paused.
	ExtensionPausable

	// ExtensionPausableAccount marks an account as belonging to a pausable
	// mint.
	ExtensionPausableAccount
)

// BaseKind is the base record layout an extension attaches to. The
// extension region starts at a different offset for each kind.
type BaseKind uint8

const (
	// MintKind extensions follow a mint base record.
	MintKind BaseKind = iota

	// TokenAccountKind extensions follow a token account base record.
	TokenAccountKind
)

// VariableLen marks an extension whose body length is declared per record
// rather than fixed by the layout. Callers must use ExtensionBytes and a
// secondary decoder for these.
const VariableLen = -1

// extensionInfo is the static per-type registry entry.
type extensionInfo struct {
	kind BaseKind
	// size is the fixed body length in bytes, or VariableLen.
	size int
}

// extensionRegistry mirrors the program's wire contract: one entry per
// extension type, indexed by code. Immutable after process start.
var extensionRegistry = [...]extensionInfo{
	ExtensionUninitialized:                 {MintKind, 0},
	ExtensionTransferFeeConfig:             {MintKind, 108},
	ExtensionTransferFeeAmount:             {TokenAccountKind, 8},
	ExtensionMintCloseAuthority:            {MintKind, 32},
	ExtensionConfidentialTransferMint:      {MintKind, 65},
	ExtensionConfidentialTransferAccount:   {TokenAccountKind, 295},
	ExtensionDefaultAccountState:           {MintKind, 1},
	ExtensionImmutableOwner:                {TokenAccountKind, 0},
	ExtensionMemoTransfer:                  {TokenAccountKind, 1},
	ExtensionNonTransferable:               {MintKind, 0},
	ExtensionInterestBearingConfig:         {MintKind, 52},
	ExtensionCpiGuard:                      {TokenAccountKind, 1},
	ExtensionPermanentDelegate:             {MintKind, 32},
	ExtensionNonTransferableAccount:        {TokenAccountKind, 0},
	ExtensionTransferHook:                  {MintKind, 64},
	ExtensionTransferHookAccount:           {TokenAccountKind, 1},
	ExtensionConfidentialTransferFeeConfig: {MintKind, 129},
	ExtensionConfidentialTransferFeeAmount: {TokenAccountKind, 64},
	ExtensionMetadataPointer:               {MintKind, 64},
	ExtensionTokenMetadata:                 {MintKind, VariableLen},
	ExtensionGroupPointer:                  {MintKind, 64},
	ExtensionTokenGroup:                    {MintKind, 80},
	ExtensionGroupMemberPointer:            {MintKind, 64},
	ExtensionTokenGroupMember:              {MintKind, 72},
	ExtensionConfidentialMintBurn:          {MintKind, 196},
	ExtensionScaledUiAmount:                {MintKind, 56},
	ExtensionPausable:                      {MintKind, 33},
	ExtensionPausableAccount:               {TokenAccountKind, 0},
}

// Valid returns true if the code is within the closed enumeration.
func (t ExtensionType) Valid() bool {
	return int(t) < len(extensionRegistry)
}

// BaseKind returns the base record layout this extension attaches to.
func (t ExtensionType) BaseKind() BaseKind {
	return extensionRegistry[t].kind
}

// Len returns the fixed body length for this extension, or VariableLen for
// extensions whose length is declared per record.
func (t ExtensionType) Len() int {
	return extensionRegistry[t].size
}

// extensionTypeAt reads a type code out of a record header. The second
// return is false for codes outside the enumeration.
func extensionTypeAt(header []byte) (ExtensionType, bool) {
	code := ExtensionType(binary.LittleEndian.Uint16(header))
	return code, code.Valid()
}

var extensionTypeNames = [...]string{
	"Uninitialized",
	"TransferFeeConfig",
	"TransferFeeAmount",
	"MintCloseAuthority",
	"ConfidentialTransferMint",
	"ConfidentialTransferAccount",
	"DefaultAccountState",
	"ImmutableOwner",
	"MemoTransfer",
	"NonTransferable",
	"InterestBearingConfig",
	"CpiGuard",
	"PermanentDelegate",
	"NonTransferableAccount",
	"TransferHook",
	"TransferHookAccount",
	"ConfidentialTransferFeeConfig",
	"ConfidentialTransferFeeAmount",
	"MetadataPointer",
	"TokenMetadata",
	"GroupPointer",
	"TokenGroup",
	"GroupMemberPointer",
	"TokenGroupMember",
	"ConfidentialMintBurn",
	"ScaledUiAmount",
	"Pausable",
	"PausableAccount",
}

// String returns the extension's name, or a numeric form for codes outside
// the enumeration.
func (t ExtensionType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ExtensionType(%d)", uint16(t))
	}
	return extensionTypeNames[t]
}
