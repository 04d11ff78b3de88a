package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// Pod sizes of the twisted ElGamal primitives carried inside confidential
// extensions. Only their byte shape is modeled; the cryptography lives in
// the zk proof program.
const (
	ElGamalPubkeyLen     = 32
	AeCiphertextLen      = 36
	ElGamalCiphertextLen = 64
)

// ElGamalPubkey is a serialized ElGamal encryption key.
type ElGamalPubkey [ElGamalPubkeyLen]byte

// AeCiphertext is a serialized authenticated-encryption ciphertext, the
// decryptable form of a confidential balance.
type AeCiphertext [AeCiphertextLen]byte

// ElGamalCiphertext is a serialized twisted ElGamal ciphertext.
type ElGamalCiphertext [ElGamalCiphertextLen]byte

// ConfidentialTransferMint is the mint extension holding the auditor
// configuration for confidential transfers.
type ConfidentialTransferMint struct {
	// Authority can approve accounts and rotate the auditor key.
	Authority solana.PublicKey
	// AutoApproveNewAccounts skips the explicit approval step.
	AutoApproveNewAccounts bool
	// AuditorElGamalPubkey is the auditor's encryption key. Zero disables
	// auditing.
	AuditorElGamalPubkey ElGamalPubkey
}

// ExtensionType returns the wire type code.
func (ConfidentialTransferMint) ExtensionType() ExtensionType {
	return ExtensionConfidentialTransferMint
}

// ConfidentialTransferAccount is the account extension holding per-account
// confidential transfer state.
type ConfidentialTransferAccount struct {
	// Approved is set once the mint authority approves the account.
	Approved bool
	// ElGamalPubkey encrypts the account's confidential balances.
	ElGamalPubkey ElGamalPubkey
	// PendingBalanceLo holds the low bits of incoming transfers.
	PendingBalanceLo ElGamalCiphertext
	// PendingBalanceHi holds the high bits of incoming transfers.
	PendingBalanceHi ElGamalCiphertext
	// AvailableBalance is the spendable encrypted balance.
	AvailableBalance ElGamalCiphertext
	// DecryptableAvailableBalance is the owner-decryptable balance.
	DecryptableAvailableBalance AeCiphertext
	// AllowConfidentialCredits permits incoming confidential transfers.
	AllowConfidentialCredits bool
	// AllowNonConfidentialCredits permits incoming public transfers.
	AllowNonConfidentialCredits bool
	// PendingBalanceCreditCounter counts credits into the pending balance.
	PendingBalanceCreditCounter uint64
	// MaximumPendingBalanceCreditCounter caps pending credits before an
	// apply is required.
	MaximumPendingBalanceCreditCounter uint64
	// ExpectedPendingBalanceCreditCounter is the counter claimed by the
	// last apply.
	ExpectedPendingBalanceCreditCounter uint64
	// ActualPendingBalanceCreditCounter is the counter at the last apply.
	ActualPendingBalanceCreditCounter uint64
}

// ExtensionType returns the wire type code.
func (ConfidentialTransferAccount) ExtensionType() ExtensionType {
	return ExtensionConfidentialTransferAccount
}

// ConfidentialTransferFeeConfig is the mint extension holding encrypted
// withheld fees and the key they are encrypted under.
type ConfidentialTransferFeeConfig struct {
	// Authority can rotate the withdraw authority key.
	Authority solana.PublicKey
	// WithdrawWithheldAuthorityElGamalPubkey encrypts withheld fees.
	WithdrawWithheldAuthorityElGamalPubkey ElGamalPubkey
	// HarvestToMintEnabled permits harvesting account fees to the mint.
	HarvestToMintEnabled bool
	// WithheldAmount is the encrypted fee total withheld on the mint.
	WithheldAmount ElGamalCiphertext
}

// ExtensionType returns the wire type code.
func (ConfidentialTransferFeeConfig) ExtensionType() ExtensionType {
	return ExtensionConfidentialTransferFeeConfig
}

// ConfidentialTransferFeeAmount is the account extension holding encrypted
// withheld transfer fees.
type ConfidentialTransferFeeAmount struct {
	// WithheldAmount is the encrypted withheld fee total.
	WithheldAmount ElGamalCiphertext
}

// ExtensionType returns the wire type code.
func (ConfidentialTransferFeeAmount) ExtensionType() ExtensionType {
	return ExtensionConfidentialTransferFeeAmount
}

// ConfidentialMintBurn is the mint extension tracking the confidential
// supply of a mint that allows confidential minting and burning.
type ConfidentialMintBurn struct {
	// ConfidentialSupply is the supply encrypted under SupplyElGamalPubkey.
	ConfidentialSupply ElGamalCiphertext
	// DecryptableSupply is the authority-decryptable supply.
	DecryptableSupply AeCiphertext
	// SupplyElGamalPubkey encrypts the confidential supply.
	SupplyElGamalPubkey ElGamalPubkey
	// PendingBurn is the burn total not yet folded into the supply.
	PendingBurn ElGamalCiphertext
}

// ExtensionType returns the wire type code.
func (ConfidentialMintBurn) ExtensionType() ExtensionType { return ExtensionConfidentialMintBurn }

// Instructions

// Inner discriminators of the confidential mint-burn instruction group.
const (
	initializeConfidentialMintBurnIx = 0
	rotateSupplyElGamalPubkeyIx      = 1
	updateDecryptableSupplyIx        = 2
	confidentialMintIx               = 3
	confidentialBurnIx               = 4
	applyPendingBurnIx               = 5
)

// InitializeConfidentialMintBurn configures confidential minting and
// burning on a mint under initialization.
//
// Accounts:
//  0. `[WRITE]` The mint to initialize.
type InitializeConfidentialMintBurn struct {
	// Mint is the mint being initialized.
	Mint solana.PublicKey
	// SupplyElGamalPubkey encrypts the confidential supply.
	SupplyElGamalPubkey ElGamalPubkey
	// DecryptableSupply is the initial zero supply encrypted under the
	// supply AES key.
	DecryptableSupply AeCiphertext
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..34]: supply ElGamal pubkey (32 bytes)
//   - [34..70]: decryptable supply (36 bytes)
func (i InitializeConfidentialMintBurn) Build() solana.Instruction {
	data := newInstructionData(70)
	data.writeUint8(confidentialMintBurnIx)
	data.writeUint8(initializeConfidentialMintBurnIx)
	data.writeBytes(i.SupplyElGamalPubkey[:])
	data.writeBytes(i.DecryptableSupply[:])

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(i.Mint),
		},
		data.bytes(),
	)
}

// RotateSupplyElGamalPubkey re-encrypts the confidential supply under a
// new key, backed by a ciphertext-ciphertext equality proof.
//
// Accounts:
//  0. `[WRITE]` The mint to rotate.
//  1. `[]` The instructions sysvar, or the context state account holding a
//     pre-verified equality proof.
//  2. `[SIGNER]` The confidential mint authority.
type RotateSupplyElGamalPubkey struct {
	// Mint is the mint to rotate.
	Mint solana.PublicKey
	// InstructionsSysvar locates the proof instruction, or holds the
	// pre-verified proof context when ProofInstructionOffset is 0.
	InstructionsSysvar solana.PublicKey
	// Authority is the confidential mint authority.
	Authority solana.PublicKey
	// NewSupplyElGamalPubkey is the replacement supply encryption key.
	NewSupplyElGamalPubkey ElGamalPubkey
	// ProofInstructionOffset is the position of the equality proof
	// verification instruction relative to this one within the
	// transaction. 0 means the proof is in a pre-verified context account.
	ProofInstructionOffset int8
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..34]: new supply ElGamal pubkey (32 bytes)
//   - [34]: proof instruction offset (i8)
func (r RotateSupplyElGamalPubkey) Build() solana.Instruction {
	data := newInstructionData(35)
	data.writeUint8(confidentialMintBurnIx)
	data.writeUint8(rotateSupplyElGamalPubkeyIx)
	data.writeBytes(r.NewSupplyElGamalPubkey[:])
	data.writeInt8(r.ProofInstructionOffset)

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(r.Mint),
			readonly(r.InstructionsSysvar),
			readonlySigner(r.Authority),
		},
		data.bytes(),
	)
}

// UpdateDecryptableSupply replaces the decryptable supply ciphertext.
//
// Accounts:
//  0. `[WRITE]` The mint to update.
//  1. `[SIGNER]` The confidential mint authority.
type UpdateDecryptableSupply struct {
	// Mint is the mint to update.
	Mint solana.PublicKey
	// Authority is the confidential mint authority.
	Authority solana.PublicKey
	// NewDecryptableSupply is the replacement ciphertext.
	NewDecryptableSupply AeCiphertext
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..38]: new decryptable supply (36 bytes)
func (u UpdateDecryptableSupply) Build() solana.Instruction {
	data := newInstructionData(38)
	data.writeUint8(confidentialMintBurnIx)
	data.writeUint8(updateDecryptableSupplyIx)
	data.writeBytes(u.NewDecryptableSupply[:])

	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(u.Mint),
			readonlySigner(u.Authority),
		},
		data.bytes(),
	)
}

// ConfidentialMint mints confidential tokens into an account, backed by
// equality, ciphertext validity, and range proofs.
//
// Accounts:
//  0. `[WRITE]` The token account to mint to.
//  1. `[WRITE]` The mint.
//  2. `[]` (optional) The instructions sysvar, required when any proof
//     offset is nonzero.
//  3. `[]` (optional) Context state account for the equality proof.
//  4. `[]` (optional) Context state account for the validity proof.
//  5. `[]` (optional) Context state account for the range proof.
//  6. `[SIGNER]` The account owner.
type ConfidentialMint struct {
	// Account is the token account receiving the mint.
	Account solana.PublicKey
	// Mint is the mint to mint from.
	Mint solana.PublicKey
	// InstructionsSysvar is included when a proof travels inline in the
	// transaction. Nil omits the account.
	InstructionsSysvar *solana.PublicKey
	// EqualityProofContext holds a pre-verified equality proof. Nil omits
	// the account.
	EqualityProofContext *solana.PublicKey
	// ValidityProofContext holds a pre-verified validity proof. Nil omits
	// the account.
	ValidityProofContext *solana.PublicKey
	// RangeProofContext holds a pre-verified range proof. Nil omits the
	// account.
	RangeProofContext *solana.PublicKey
	// AccountOwner is the token account owner.
	AccountOwner solana.PublicKey
	// NewDecryptableSupply is the supply ciphertext if the mint succeeds.
	NewDecryptableSupply AeCiphertext
	// MintAmountAuditorCiphertextLo is the low-bit amount ciphertext under
	// the auditor key.
	MintAmountAuditorCiphertextLo ElGamalCiphertext
	// MintAmountAuditorCiphertextHi is the high-bit amount ciphertext
	// under the auditor key.
	MintAmountAuditorCiphertextHi ElGamalCiphertext
	// EqualityProofInstructionOffset locates the equality proof
	// verification instruction relative to this one. 0 means the proof is
	// in a pre-verified context account.
	EqualityProofInstructionOffset int8
	// CiphertextValidityProofInstructionOffset locates the validity proof
	// verification instruction relative to this one. 0 means the proof is
	// in a pre-verified context account.
	CiphertextValidityProofInstructionOffset int8
	// RangeProofInstructionOffset locates the range proof verification
	// instruction relative to this one. 0 means the proof is in a
	// pre-verified context account.
	RangeProofInstructionOffset int8
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
//   - [2..38]: new decryptable supply (36 bytes)
//   - [38..102]: auditor ciphertext lo (64 bytes)
//   - [102..166]: auditor ciphertext hi (64 bytes)
//   - [166]: equality proof instruction offset (i8)
//   - [167]: ciphertext validity proof instruction offset (i8)
//   - [168]: range proof instruction offset (i8)
func (c ConfidentialMint) Build() solana.Instruction {
	data := newInstructionData(169)
	data.writeUint8(confidentialMintBurnIx)
	data.writeUint8(confidentialMintIx)
	data.writeBytes(c.NewDecryptableSupply[:])
	data.writeBytes(c.MintAmountAuditorCiphertextLo[:])
	data.writeBytes(c.MintAmountAuditorCiphertextHi[:])
	data.writeInt8(c.EqualityProofInstructionOffset)
	data.writeInt8(c.CiphertextValidityProofInstructionOffset)
	data.writeInt8(c.RangeProofInstructionOffset)

	metas := solana.AccountMetaSlice{
		writable(c.Account),
		writable(c.Mint),
	}
	metas = appendOptionalReadonly(metas, c.InstructionsSysvar)
	metas = appendOptionalReadonly(metas, c.EqualityProofContext)
	metas = appendOptionalReadonly(metas, c.ValidityProofContext)
	metas = appendOptionalReadonly(metas, c.RangeProofContext)
	metas = append(metas, readonlySigner(c.AccountOwner))

	return solana.NewInstruction(ProgramID, metas, data.bytes())
}

// ConfidentialBurn burns confidential tokens from an account, backed by
// the same proof triple as ConfidentialMint.
//
// Accounts mirror ConfidentialMint with the token account as the burn
// source.
type ConfidentialBurn struct {
	// Account is the token account to burn from.
	Account solana.PublicKey
	// Mint is the account's mint.
	Mint solana.PublicKey
	// InstructionsSysvar is included when a proof travels inline in the
	// transaction. Nil omits the account.
	InstructionsSysvar *solana.PublicKey
	// EqualityProofContext holds a pre-verified equality proof. Nil omits
	// the account.
	EqualityProofContext *solana.PublicKey
	// ValidityProofContext holds a pre-verified validity proof. Nil omits
	// the account.
	ValidityProofContext *solana.PublicKey
	// RangeProofContext holds a pre-verified range proof. Nil omits the
	// account.
	RangeProofContext *solana.PublicKey
	// AccountOwner is the token account owner.
	AccountOwner solana.PublicKey
	// NewDecryptableAvailableBalance is the burner's balance ciphertext if
	// the burn succeeds.
	NewDecryptableAvailableBalance AeCiphertext
	// BurnAmountAuditorCiphertextLo is the low-bit amount ciphertext under
	// the auditor key.
	BurnAmountAuditorCiphertextLo ElGamalCiphertext
	// BurnAmountAuditorCiphertextHi is the high-bit amount ciphertext
	// under the auditor key.
	BurnAmountAuditorCiphertextHi ElGamalCiphertext
	// EqualityProofInstructionOffset locates the equality proof
	// verification instruction relative to this one. 0 means the proof is
	// in a pre-verified context account.
	EqualityProofInstructionOffset int8
	// CiphertextValidityProofInstructionOffset locates the validity proof
	// verification instruction relative to this one. 0 means the proof is
	// in a pre-verified context account.
	CiphertextValidityProofInstructionOffset int8
	// RangeProofInstructionOffset locates the range proof verification
	// instruction relative to this one. 0 means the proof is in a
	// pre-verified context account.
	RangeProofInstructionOffset int8
}

// Build encodes the instruction.
//
// Payload layout matches ConfidentialMint with the burn inner
// discriminator and the balance ciphertext in place of the supply.
func (c ConfidentialBurn) Build() solana.Instruction {
	data := newInstructionData(169)
	data.writeUint8(confidentialMintBurnIx)
	data.writeUint8(confidentialBurnIx)
	data.writeBytes(c.NewDecryptableAvailableBalance[:])
	data.writeBytes(c.BurnAmountAuditorCiphertextLo[:])
	data.writeBytes(c.BurnAmountAuditorCiphertextHi[:])
	data.writeInt8(c.EqualityProofInstructionOffset)
	data.writeInt8(c.CiphertextValidityProofInstructionOffset)
	data.writeInt8(c.RangeProofInstructionOffset)

	metas := solana.AccountMetaSlice{
		writable(c.Account),
		writable(c.Mint),
	}
	metas = appendOptionalReadonly(metas, c.InstructionsSysvar)
	metas = appendOptionalReadonly(metas, c.EqualityProofContext)
	metas = appendOptionalReadonly(metas, c.ValidityProofContext)
	metas = appendOptionalReadonly(metas, c.RangeProofContext)
	metas = append(metas, readonlySigner(c.AccountOwner))

	return solana.NewInstruction(ProgramID, metas, data.bytes())
}

// ApplyPendingBurn folds the pending burn total into the confidential
// supply.
//
// Accounts:
//  0. `[WRITE]` The mint.
//  1. `[SIGNER]` The mint's authority.
type ApplyPendingBurn struct {
	// Mint is the mint to apply the pending burn on.
	Mint solana.PublicKey
	// MintAuthority is the mint's authority.
	MintAuthority solana.PublicKey
}

// Build encodes the instruction.
//
// Payload layout:
//   - [0]: instruction discriminator (u8)
//   - [1]: extension instruction discriminator (u8)
func (a ApplyPendingBurn) Build() solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			writable(a.Mint),
			readonlySigner(a.MintAuthority),
		},
		[]byte{confidentialMintBurnIx, applyPendingBurnIx},
	)
}

// appendOptionalReadonly appends a readonly meta when the key is present.
func appendOptionalReadonly(metas solana.AccountMetaSlice, key *solana.PublicKey) solana.AccountMetaSlice {
	if key == nil {
		return metas
	}
	return append(metas, readonly(*key))
}
