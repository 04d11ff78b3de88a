// Package token2022 provides a Go implementation of the Token-2022 account
// and instruction wire format for Solana token ledgers.
//
// Token-2022 extends the classic SPL token layout with an extension
// directory: a type-length-value (TLV) record stream appended after the
// fixed-size mint or token-account base record. This library allows you to:
//   - Locate and decode individual extensions out of raw account data
//   - Decode the variable-length token metadata extension
//   - Build the exact instruction byte sequences the program expects,
//     including the confidential-transfer proof offset scheme
//
// # Basic Usage
//
// Decode an extension from account data:
//
//	cfg, err := token2022.GetExtension[token2022.PausableConfig](account)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Paused)
//
// Build an instruction and hand it to your transaction dispatcher:
//
//	ix := token2022.Pause{
//	    Mint:           mint,
//	    PauseAuthority: authority,
//	}.Build()
//
// # Decoding
//
// Extensions come in two shapes:
//
//   - Fixed layout: the whole body is one little-endian value of a known
//     size. GetExtension locates the record, checks the declared length
//     against the registered size, and decodes field by field.
//
//   - Variable layout: the body itself holds nested length-prefixed fields
//     (token metadata). ExtensionBytes returns the raw body span and
//     DecodeTokenMetadata handles the nested structure.
//
// The scanner aborts with ErrMalformedExtensions on the first extension
// type code it does not recognize. A newer on-chain format may carry codes
// this library has never seen; treating them as corruption rather than
// skipping them is the behavior of the program's own reference scanner and
// is preserved here verbatim.
//
// # Encoding
//
// Instruction payloads are [discriminator][inner discriminator?][fields].
// Optional public keys are encoded as 32 zero bytes when absent; the wire
// format cannot distinguish "absent" from "explicitly zero" and neither
// does this library. Proof instruction offsets are opaque signed bytes
// locating a zero-knowledge proof verification instruction relative to the
// built instruction within its transaction; 0 means the proof lives in a
// pre-verified context account.
//
// # References
//
// For more information about the Token-2022 program, see:
//   - https://spl.solana.com/token-2022 (program documentation)
//   - https://spl.solana.com/token-2022/extensions (extension guide)
package token2022

import (
	"github.com/gagliardetto/solana-go"
)

// ProgramID is the on-chain address of the Token-2022 program.
var ProgramID = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
