package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// PausableConfig is the mint extension gating minting, burning, and
// transferring behind a pause switch.
type PausableConfig struct {
	// Authority can pause or resume activity on the mint.
	Authority solana.PublicKey
	// Paused is true while activity is suspended.
	Paused bool
}

// ExtensionType returns the wire type code.
func (PausableConfig) ExtensionType() ExtensionType { return ExtensionPausable }

// PausableAccount is the account extension marking an account as belonging
// to a pausable mint. It has no body.
type PausableAccount struct{}

// ExtensionType returns the wire type code.
func (PausableAccount) ExtensionType() ExtensionType { return ExtensionPausableAccount }

// Instructions

// Inner discriminators of the pausable instruction group. Initialization
// uses its own outer discriminator with inner 0.
const (
	initializePausableConfigIx = 0
	pauseIx                    = 1
	resumeIx                   = 2
)

// InitializePausable sets the pause authority on a mint under
// initialization.
//
// Accounts:
//  0. `[WRITE]` The mint to initialize.
type InitializePausable struct {
	// Mint is the mint being initialized.
	Mint solana.PublicKey
	// Authority can pause or resume activity on the mint.
	Authority solana.PublicKey
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..34]: authority (32 bytes)
func (i InitializePausable) Build() solana.Instruction {
	data := newInstructionData(34)
	data.writeUint8(initializePausableIx)
	data.writeUint8(initializePausableConfigIx)
	data.writePublicKey(i.Authority)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(i.Mint),
		},
		data.bytes(),
	)
}

// Pause suspends minting, burning, and transferring on the mint.
//
// Accounts:
//  0. `[WRITE]` The mint to pause.
//  1. `[SIGNER]` The mint's pause authority.
type Pause struct {
	// Mint is the mint to pause.
	Mint solana.PublicKey
	// PauseAuthority is the mint's pause authority.
	PauseAuthority solana.PublicKey
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
func (p Pause) Build() solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(p.Mint),
			readonlySigner(p.PauseAuthority),
		},
		[]byte{pausableIx, pauseIx},
	)
}

// Resume lifts a pause on the mint.
//
// Accounts:
//  0. `[WRITE]` The mint to resume.
//  1. `[SIGNER]` The mint's pause authority.
type Resume struct {
	// Mint is the mint to resume.
	Mint solana.PublicKey
	// PauseAuthority is the mint's pause authority.
	PauseAuthority solana.PublicKey
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
func (r Resume) Build() solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(r.Mint),
			readonlySigner(r.PauseAuthority),
		},
		[]byte{pausableIx, resumeIx},
	)
}
