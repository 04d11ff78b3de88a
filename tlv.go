package token2022

import (
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
)

// Extension is implemented by every typed extension value. The method
// binds the value to its registry entry so the generic accessors can
// locate and size-check the record.
type Extension interface {
	// ExtensionType returns the wire type code for this extension.
	ExtensionType() ExtensionType
}

// findExtension walks the TLV records of an extension region and returns
// the body span of the first record matching the wanted type.
//
// With exactLen set, a matching type whose declared length differs from
// the registry's fixed size is skipped like any other non-matching record;
// if no exact match follows, the scan reports ErrExtensionNotFound. The
// caller cannot tell a length mismatch apart from absence, mirroring the
// program's own scanner.
//
// An unrecognized type code aborts the scan with an
// UnknownExtensionTypeError: record boundaries past an unknown record
// cannot be trusted, whether the buffer is corrupt or merely newer than
// this registry. This matches the reference scanner and is deliberately
// not a skip-and-continue.
func findExtension(data []byte, wanted ExtensionType, exactLen bool) ([]byte, error) {
	start := extensionRegionStart(wanted.BaseKind())
	if len(data) < start {
		return nil, ErrExtensionNotFound
	}
	region := data[start:]

	cursor := 0
	for cursor+extensionHeaderLen <= len(region) {
		header := region[cursor : cursor+extensionHeaderLen]
		code, ok := extensionTypeAt(header)
		if !ok {
			return nil, &UnknownExtensionTypeError{
				Code:   binary.LittleEndian.Uint16(header),
				Offset: cursor,
			}
		}

		length := int(binary.LittleEndian.Uint16(header[2:]))
		bodyStart := cursor + extensionHeaderLen
		if bodyStart+length > len(region) {
			return nil, &TruncatedExtensionError{Type: code, Offset: cursor}
		}

		if code == wanted && (!exactLen || length == wanted.Len()) {
			return region[bodyStart : bodyStart+length], nil
		}

		cursor = bodyStart + length
	}

	return nil, ErrExtensionNotFound
}

// GetExtension locates T's record in the account's extension region and
// decodes it as a little-endian fixed-layout value.
//
// The account must be owned by the Token-2022 program; an owner mismatch
// is reported as ErrInvalidAccountOwner before any parsing. The record's
// declared length must equal T's registered size, otherwise the result is
// ErrExtensionNotFound.
//
// The returned value is a copy; it stays valid after the account buffer is
// released or reused.
func GetExtension[T Extension](account Account) (T, error) {
	var ext T

	if !account.Owner().Equals(ProgramID) {
		return ext, ErrInvalidAccountOwner
	}

	body, err := findExtension(account.Data(), ext.ExtensionType(), true)
	if err != nil {
		return ext, err
	}

	if err := bin.NewBinDecoder(body).Decode(&ext); err != nil {
		return ext, &DecodeError{Type: ext.ExtensionType(), Err: err}
	}
	return ext, nil
}

// ExtensionBytes returns the raw body span of the first record of the
// given type, at whatever length the record declares. This is the accessor
// for extensions whose body holds further nested length-prefixed fields;
// fixed-layout extensions should use GetExtension instead.
//
// The returned slice aliases the account data and must not be used after
// the buffer owner releases it.
func ExtensionBytes(account Account, wanted ExtensionType) ([]byte, error) {
	if !account.Owner().Equals(ProgramID) {
		return nil, ErrInvalidAccountOwner
	}
	return findExtension(account.Data(), wanted, false)
}
