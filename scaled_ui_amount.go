package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// ScaledUiAmountConfig is the mint extension scaling raw amounts into UI
// amounts by a multiplier. A follow-up multiplier can be staged with a
// future effective timestamp.
type ScaledUiAmountConfig struct {
	// Authority can set the multiplier and rotate itself.
	Authority solana.PublicKey
	// Multiplier applies to raw amounts, outside of the decimal.
	Multiplier float64
	// NewMultiplierEffectiveTimestamp is when NewMultiplier takes effect.
	NewMultiplierEffectiveTimestamp int64
	// NewMultiplier replaces Multiplier once its timestamp is reached.
	NewMultiplier float64
}

// ExtensionType returns the wire type code.
func (ScaledUiAmountConfig) ExtensionType() ExtensionType { return ExtensionScaledUiAmount }

// Instructions

// Inner discriminators of the scaled UI amount instruction group.
const (
	initializeScaledUiAmountIx = 0
	updateMultiplierIx         = 1
)

// InitializeScaledUiAmount sets the initial multiplier on a mint under
// initialization.
//
// Accounts:
//  0. `[WRITE]` The mint to initialize.
type InitializeScaledUiAmount struct {
	// Mint is the mint being initialized.
	Mint solana.PublicKey
	// Authority can later update the multiplier. Nil encodes as 32 zero
	// bytes, leaving the multiplier immutable.
	Authority *solana.PublicKey
	// Multiplier is the initial scaling multiplier.
	Multiplier float64
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..34]: authority, zeroed when absent (32 bytes)
//   - [34..42]: multiplier (f64, little-endian)
func (i InitializeScaledUiAmount) Build() solana.Instruction {
	data := newInstructionData(42)
	data.writeUint8(scaledUiAmountIx)
	data.writeUint8(initializeScaledUiAmountIx)
	data.writeOptionalPublicKey(i.Authority)
	data.writeFloat64(i.Multiplier)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(i.Mint),
		},
		data.bytes(),
	)
}

// UpdateMultiplier stages a new multiplier on an existing mint. The
// multiplier travels as its raw 8-byte encoding.
//
// Accounts:
//  0. `[WRITE]` The mint to update.
//  1. `[SIGNER]` The multiplier authority.
type UpdateMultiplier struct {
	// Mint is the mint to update.
	Mint solana.PublicKey
	// Authority is the mint's multiplier authority.
	Authority solana.PublicKey
	// Multiplier is the new multiplier's 8-byte little-endian encoding.
	Multiplier [8]byte
	// EffectiveTimestamp is when the new multiplier takes effect.
	EffectiveTimestamp int64
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..10]: multiplier (8 bytes)
//   - [10..18]: effective timestamp (i64, little-endian)
func (u UpdateMultiplier) Build() solana.Instruction {
	data := newInstructionData(18)
	data.writeUint8(scaledUiAmountIx)
	data.writeUint8(updateMultiplierIx)
	data.writeBytes(u.Multiplier[:])
	data.writeInt64(u.EffectiveTimestamp)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(u.Mint),
			readonlySigner(u.Authority),
		},
		data.bytes(),
	)
}
