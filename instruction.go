package token2022

import (
	"encoding/binary"
	"math"

	"github.com/gagliardetto/solana-go"
)

// Instruction discriminators of the token program. Multi-operation feature
// groups carry a second, inner discriminator byte; its values live with
// the feature's constructors.
const (
	revokeIx                      = 5
	setAuthorityIx                = 6
	thawAccountIx                 = 11
	syncNativeIx                  = 17
	defaultAccountStateIx         = 28
	initializePermanentDelegateIx = 35
	transferHookIx                = 36
	confidentialMintBurnIx        = 42
	scaledUiAmountIx              = 43
	initializePausableIx          = 44
	pausableIx                    = 45
)

// instructionData builds a discriminator-prefixed instruction payload.
// Fields are appended in wire order; every write is fixed-width.
type instructionData struct {
	buf []byte
}

func newInstructionData(capacity int) *instructionData {
	return &instructionData{buf: make([]byte, 0, capacity)}
}

func (d *instructionData) writeUint8(v uint8) {
	d.buf = append(d.buf, v)
}

// writeInt8 appends a signed byte, used for proof instruction offsets. The
// value is opaque here: whether the referenced instruction exists is the
// dispatcher's problem.
func (d *instructionData) writeInt8(v int8) {
	d.buf = append(d.buf, byte(v))
}

func (d *instructionData) writeUint64(v uint64) {
	d.buf = binary.LittleEndian.AppendUint64(d.buf, v)
}

func (d *instructionData) writeInt64(v int64) {
	d.buf = binary.LittleEndian.AppendUint64(d.buf, uint64(v))
}

func (d *instructionData) writeFloat64(v float64) {
	d.buf = binary.LittleEndian.AppendUint64(d.buf, math.Float64bits(v))
}

func (d *instructionData) writeBytes(b []byte) {
	d.buf = append(d.buf, b...)
}

func (d *instructionData) writePublicKey(key solana.PublicKey) {
	d.buf = append(d.buf, key[:]...)
}

// writeOptionalPublicKey appends the key, or 32 zero bytes when nil. The
// wire format cannot distinguish an absent key from an explicitly zero
// one; that ambiguity belongs to the program and is reproduced verbatim.
func (d *instructionData) writeOptionalPublicKey(key *solana.PublicKey) {
	if key == nil {
		d.writePublicKey(solana.PublicKey{})
		return
	}
	d.writePublicKey(*key)
}

func (d *instructionData) bytes() []byte {
	return d.buf
}

// Account meta helpers. Order of the returned metas is the order the
// program expects; tags record intent for the dispatcher and never cause
// the referenced account data to be touched here.

func writable(key solana.PublicKey) *solana.AccountMeta {
	return solana.NewAccountMeta(key, true, false)
}

func readonly(key solana.PublicKey) *solana.AccountMeta {
	return solana.NewAccountMeta(key, false, false)
}

func readonlySigner(key solana.PublicKey) *solana.AccountMeta {
	return solana.NewAccountMeta(key, false, true)
}

// Revoke revokes a previously approved delegate's authority over the
// source account.
//
// Accounts:
//  0. `[WRITE]` The source account.
//  1. `[SIGNER]` The source account owner.
type Revoke struct {
	// Source is the token account whose delegate is revoked.
	Source solana.PublicKey
	// Owner is the source account owner.
	Owner solana.PublicKey
}

// Build encodes the instruction.
func (r Revoke) Build() solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(r.Source),
			readonlySigner(r.Owner),
		},
		[]byte{revokeIx},
	)
}

// SyncNative updates a native token account's amount field from the
// account's underlying lamports.
//
// Accounts:
//  0. `[WRITE]` The native token account to sync.
type SyncNative struct {
	// NativeToken is the wrapped-native token account.
	NativeToken solana.PublicKey
}

// Build encodes the instruction.
func (s SyncNative) Build() solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(s.NativeToken),
		},
		[]byte{syncNativeIx},
	)
}

// ThawAccount thaws a frozen account using the mint's freeze authority.
//
// Accounts:
//  0. `[WRITE]` The account to thaw.
//  1. `[]` The token mint.
//  2. `[SIGNER]` The mint freeze authority.
type ThawAccount struct {
	// Account is the token account to thaw.
	Account solana.PublicKey
	// Mint is the account's mint.
	Mint solana.PublicKey
	// FreezeAuthority is the mint's freeze authority.
	FreezeAuthority solana.PublicKey
}

// Build encodes the instruction.
func (t ThawAccount) Build() solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(t.Account),
			readonly(t.Mint),
			readonlySigner(t.FreezeAuthority),
		},
		[]byte{thawAccountIx},
	)
}

// SetAuthority replaces one authority of a mint or token account.
//
// Accounts:
//  0. `[WRITE]` The mint or account to change the authority of.
//  1. `[SIGNER]` The current authority.
type SetAuthority struct {
	// Account is the mint or token account to update.
	Account solana.PublicKey
	// Authority is the current authority of the given type.
	Authority solana.PublicKey
	// AuthorityType selects which authority to replace.
	AuthorityType AuthorityType
	// NewAuthority is the replacement authority. Nil clears the authority
	// (encoded as 32 zero bytes).
	NewAuthority *solana.PublicKey
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: authority type (u8)
//   - [2..34]: new authority, zeroed when absent (32 bytes)
func (s SetAuthority) Build() solana.Instruction {
	data := newInstructionData(34)
	data.writeUint8(setAuthorityIx)
	data.writeUint8(uint8(s.AuthorityType))
	data.writeOptionalPublicKey(s.NewAuthority)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(s.Account),
			readonlySigner(s.Authority),
		},
		data.bytes(),
	)
}
