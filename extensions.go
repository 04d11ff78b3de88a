package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// MintCloseAuthority is the mint extension holding an optional close
// authority.
type MintCloseAuthority struct {
	// CloseAuthority can close the mint. Zero means no authority was set.
	CloseAuthority solana.PublicKey
}

// ExtensionType returns the wire type code.
func (MintCloseAuthority) ExtensionType() ExtensionType { return ExtensionMintCloseAuthority }

// DefaultAccountState is the mint extension specifying the state new token
// accounts start in.
type DefaultAccountState struct {
	// State applied to newly initialized accounts of the mint.
	State AccountState
}

// ExtensionType returns the wire type code.
func (DefaultAccountState) ExtensionType() ExtensionType { return ExtensionDefaultAccountState }

// ImmutableOwner is the account extension marking the owner authority as
// unchangeable. It has no body.
type ImmutableOwner struct{}

// ExtensionType returns the wire type code.
func (ImmutableOwner) ExtensionType() ExtensionType { return ExtensionImmutableOwner }

// MemoTransfer is the account extension requiring inbound transfers to
// carry a memo.
type MemoTransfer struct {
	// RequireIncomingTransferMemos toggles the requirement.
	RequireIncomingTransferMemos bool
}

// ExtensionType returns the wire type code.
func (MemoTransfer) ExtensionType() ExtensionType { return ExtensionMemoTransfer }

// NonTransferable is the mint extension marking the mint's tokens as
// non-transferable. It has no body.
type NonTransferable struct{}

// ExtensionType returns the wire type code.
func (NonTransferable) ExtensionType() ExtensionType { return ExtensionNonTransferable }

// NonTransferableAccount is the account extension marking an account as
// belonging to a non-transferable mint. It has no body.
type NonTransferableAccount struct{}

// ExtensionType returns the wire type code.
func (NonTransferableAccount) ExtensionType() ExtensionType { return ExtensionNonTransferableAccount }

// InterestBearingConfig is the mint extension holding interest accrual
// state. Rates are in basis points; the accrual math itself lives in the
// program, not here.
type InterestBearingConfig struct {
	// RateAuthority can update the interest rate.
	RateAuthority solana.PublicKey
	// InitializationTimestamp is when the extension was initialized.
	InitializationTimestamp int64
	// PreUpdateAverageRate is the average rate before the last update.
	PreUpdateAverageRate int16
	// LastUpdateTimestamp is when the rate last changed.
	LastUpdateTimestamp int64
	// CurrentRate is the rate in effect.
	CurrentRate int16
}

// ExtensionType returns the wire type code.
func (InterestBearingConfig) ExtensionType() ExtensionType { return ExtensionInterestBearingConfig }

// CpiGuard is the account extension locking privileged operations from
// happening via CPI.
type CpiGuard struct {
	// LockCpi toggles the guard.
	LockCpi bool
}

// ExtensionType returns the wire type code.
func (CpiGuard) ExtensionType() ExtensionType { return ExtensionCpiGuard }

// PermanentDelegate is the mint extension holding an optional permanent
// delegate for transferring or burning tokens.
type PermanentDelegate struct {
	// Delegate may transfer or burn from any account of the mint. Zero
	// means no delegate was set.
	Delegate solana.PublicKey
}

// ExtensionType returns the wire type code.
func (PermanentDelegate) ExtensionType() ExtensionType { return ExtensionPermanentDelegate }

// Instructions

// Inner discriminators of the default account state instruction group.
const (
	initializeDefaultAccountStateIx = 0
	updateDefaultAccountStateIx     = 1
)

// InitializeDefaultAccountState sets the default state on a mint under
// initialization.
//
// Accounts:
//  0. `[WRITE]` The mint to initialize.
type InitializeDefaultAccountState struct {
	// Mint is the mint being initialized.
	Mint solana.PublicKey
	// State applied to new accounts of the mint.
	State AccountState
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2]: state (u8)
func (i InitializeDefaultAccountState) Build() solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(i.Mint),
		},
		[]byte{defaultAccountStateIx, initializeDefaultAccountStateIx, uint8(i.State)},
	)
}

// UpdateDefaultAccountState changes the default state of an existing mint.
//
// Accounts:
//  0. `[WRITE]` The mint to update.
//  1. `[SIGNER]` The mint's freeze authority.
type UpdateDefaultAccountState struct {
	// Mint is the mint to update.
	Mint solana.PublicKey
	// FreezeAuthority is the mint's freeze authority.
	FreezeAuthority solana.PublicKey
	// NewState applied to new accounts of the mint.
	NewState AccountState
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2]: new state (u8)
func (u UpdateDefaultAccountState) Build() solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(u.Mint),
			readonlySigner(u.FreezeAuthority),
		},
		[]byte{defaultAccountStateIx, updateDefaultAccountStateIx, uint8(u.NewState)},
	)
}

// InitializePermanentDelegate sets the permanent delegate on a mint under
// initialization.
//
// Accounts:
//  0. `[WRITE]` The mint to initialize.
type InitializePermanentDelegate struct {
	// Mint is the mint being initialized.
	Mint solana.PublicKey
	// Delegate is the permanent delegate for the mint.
	Delegate solana.PublicKey
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1..33]: delegate (32 bytes)
func (i InitializePermanentDelegate) Build() solana.Instruction {
	data := newInstructionData(33)
	data.writeUint8(initializePermanentDelegateIx)
	data.writePublicKey(i.Delegate)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(i.Mint),
		},
		data.bytes(),
	)
}
