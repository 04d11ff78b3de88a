package token2022

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidAccountOwner indicates the account is not owned by the
	// Token-2022 program. Checked before any extension parsing.
	ErrInvalidAccountOwner = errors.New("token2022: account not owned by the token program")

	// ErrMalformedExtensions indicates the extension region could not be
	// parsed: a record header or body runs past the end of the account
	// data, or an unrecognized extension type code was encountered.
	ErrMalformedExtensions = errors.New("token2022: malformed extension data")

	// ErrExtensionNotFound indicates the scan completed cleanly but no
	// record of the wanted type (with the registered length, for
	// fixed-layout extensions) exists. A record with the right type but
	// the wrong declared length also reports this error.
	ErrExtensionNotFound = errors.New("token2022: extension not found")

	// ErrInvalidMetadata indicates the token metadata body could not be
	// decoded as its nested length-prefixed fields.
	ErrInvalidMetadata = errors.New("token2022: invalid token metadata")
)

// UnknownExtensionTypeError indicates the scanner hit a type code outside
// the closed enumeration. The remainder of the stream cannot be walked
// past an unknown record, so the whole scan is abandoned.
type UnknownExtensionTypeError struct {
	Code   uint16
	Offset int // offset of the record header within the extension region
}

func (e *UnknownExtensionTypeError) Error() string {
	return fmt.Sprintf("token2022: unknown extension type %d at offset %d", e.Code, e.Offset)
}

func (e *UnknownExtensionTypeError) Unwrap() error {
	return ErrMalformedExtensions
}

// TruncatedExtensionError indicates a record header or body extends past
// the end of the extension region.
type TruncatedExtensionError struct {
	Type   ExtensionType
	Offset int
}

func (e *TruncatedExtensionError) Error() string {
	return fmt.Sprintf("token2022: extension %s truncated at offset %d", e.Type, e.Offset)
}

func (e *TruncatedExtensionError) Unwrap() error {
	return ErrMalformedExtensions
}

// DecodeError wraps a failure to decode a located extension body into its
// typed value.
type DecodeError struct {
	Type ExtensionType
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("token2022: decoding %s extension: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
