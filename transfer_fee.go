package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// TransferFee is one fee schedule entry: the fee charged on transfers from
// the given epoch onward.
type TransferFee struct {
	// Epoch is the first epoch the fee takes effect.
	Epoch uint64
	// MaximumFee caps the fee assessed on a single transfer.
	MaximumFee uint64
	// TransferFeeBasisPoints is the fee rate in basis points.
	TransferFeeBasisPoints uint16
}

// TransferFeeConfig is the mint extension holding transfer fee rates and
// the authorities that manage them. Two schedules are kept so a fee change
// can be staged one epoch ahead.
type TransferFeeConfig struct {
	// TransferFeeConfigAuthority can update the fee. Zero means the fee is
	// immutable.
	TransferFeeConfigAuthority solana.PublicKey
	// WithdrawWithheldAuthority can withdraw withheld fees. Zero means
	// withheld fees are locked forever.
	WithdrawWithheldAuthority solana.PublicKey
	// WithheldAmount is the fee total withheld on the mint itself.
	WithheldAmount uint64
	// OlderTransferFee applies until NewerTransferFee's epoch is reached.
	OlderTransferFee TransferFee
	// NewerTransferFee applies from its epoch onward.
	NewerTransferFee TransferFee
}

// ExtensionType returns the wire type code.
func (TransferFeeConfig) ExtensionType() ExtensionType { return ExtensionTransferFeeConfig }

// TransferFeeAmount is the account extension holding transfer fees
// withheld on the account, awaiting harvest.
type TransferFeeAmount struct {
	// WithheldAmount is the withheld fee total.
	WithheldAmount uint64
}

// ExtensionType returns the wire type code.
func (TransferFeeAmount) ExtensionType() ExtensionType { return ExtensionTransferFeeAmount }
