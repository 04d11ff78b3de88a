package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// TransferHook is the mint extension routing transfers through a program
// implementing the transfer hook interface.
type TransferHook struct {
	// Authority can update the hook program id. Zero means the hook is
	// immutable.
	Authority solana.PublicKey
	// ProgramID is the program that authorizes transfers. Zero disables
	// the hook.
	ProgramID solana.PublicKey
}

// ExtensionType returns the wire type code.
func (TransferHook) ExtensionType() ExtensionType { return ExtensionTransferHook }

// TransferHookAccount is the account extension flagging that the account
// is in the middle of a hooked transfer.
type TransferHookAccount struct {
	// Transferring is nonzero while a transfer is in flight.
	Transferring bool
}

// ExtensionType returns the wire type code.
func (TransferHookAccount) ExtensionType() ExtensionType { return ExtensionTransferHookAccount }

// Instructions

// Inner discriminators of the transfer hook instruction group.
const (
	initializeTransferHookIx = 0
	updateTransferHookIx     = 1
)

// InitializeTransferHook sets the hook program on a mint under
// initialization.
//
// Accounts:
//  0. `[WRITE]` The mint to initialize.
type InitializeTransferHook struct {
	// Mint is the mint being initialized.
	Mint solana.PublicKey
	// Authority can later update the hook program id. Nil encodes as 32
	// zero bytes, leaving the hook immutable.
	Authority *solana.PublicKey
	// HookProgramID authorizes transfers. Nil encodes as 32 zero bytes,
	// leaving the hook disabled.
	HookProgramID *solana.PublicKey
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..34]: authority, zeroed when absent (32 bytes)
//   - [34..66]: hook program id, zeroed when absent (32 bytes)
func (i InitializeTransferHook) Build() solana.Instruction {
	data := newInstructionData(66)
	data.writeUint8(transferHookIx)
	data.writeUint8(initializeTransferHookIx)
	data.writeOptionalPublicKey(i.Authority)
	data.writeOptionalPublicKey(i.HookProgramID)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(i.Mint),
		},
		data.bytes(),
	)
}

// UpdateTransferHook changes the hook program of an existing mint. The
// authority field of the payload is always zeroed; the signing authority
// travels in the account list instead.
//
// Accounts:
//  0. `[WRITE]` The mint to update.
//  1. `[SIGNER]` The transfer hook authority.
type UpdateTransferHook struct {
	// Mint is the mint to update.
	Mint solana.PublicKey
	// Authority is the mint's transfer hook authority.
	Authority solana.PublicKey
	// HookProgramID is the new hook program. Nil encodes as 32 zero bytes,
	// disabling the hook.
	HookProgramID *solana.PublicKey
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..34]: unset authority (32 zero bytes)
//   - [34..66]: hook program id, zeroed when absent (32 bytes)
func (u UpdateTransferHook) Build() solana.Instruction {
	data := newInstructionData(66)
	data.writeUint8(transferHookIx)
	data.writeUint8(updateTransferHookIx)
	data.writeOptionalPublicKey(nil)
	data.writeOptionalPublicKey(u.HookProgramID)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(u.Mint),
			readonlySigner(u.Authority),
		},
		data.bytes(),
	)
}
