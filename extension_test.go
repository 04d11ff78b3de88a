package token2022

import (
	"testing"
)

func TestExtensionTypeValid(t *testing.T) {
	t.Run("all codes in the enumeration", func(t *testing.T) {
		for code := 0; code <= int(ExtensionPausableAccount); code++ {
			if !ExtensionType(code).Valid() {
				t.Errorf("Code %d: expected valid", code)
			}
		}
	})

	t.Run("codes beyond the enumeration", func(t *testing.T) {
		for _, code := range []uint16{28, 29, 100, 0xFFFF} {
			if ExtensionType(code).Valid() {
				t.Errorf("Code %d: expected unrecognized", code)
			}
		}
	})
}

func TestExtensionRegistry(t *testing.T) {
	tests := []struct {
		ext  ExtensionType
		kind BaseKind
		size int
	}{
		{ExtensionUninitialized, MintKind, 0},
		{ExtensionTransferFeeConfig, MintKind, 108},
		{ExtensionTransferFeeAmount, TokenAccountKind, 8},
		{ExtensionMintCloseAuthority, MintKind, 32},
		{ExtensionConfidentialTransferMint, MintKind, 65},
		{ExtensionConfidentialTransferAccount, TokenAccountKind, 295},
		{ExtensionDefaultAccountState, MintKind, 1},
		{ExtensionImmutableOwner, TokenAccountKind, 0},
		{ExtensionMemoTransfer, TokenAccountKind, 1},
		{ExtensionNonTransferable, MintKind, 0},
		{ExtensionInterestBearingConfig, MintKind, 52},
		{ExtensionCpiGuard, TokenAccountKind, 1},
		{ExtensionPermanentDelegate, MintKind, 32},
		{ExtensionNonTransferableAccount, TokenAccountKind, 0},
		{ExtensionTransferHook, MintKind, 64},
		{ExtensionTransferHookAccount, TokenAccountKind, 1},
		{ExtensionConfidentialTransferFeeConfig, MintKind, 129},
		{ExtensionConfidentialTransferFeeAmount, TokenAccountKind, 64},
		{ExtensionMetadataPointer, MintKind, 64},
		{ExtensionTokenMetadata, MintKind, VariableLen},
		{ExtensionGroupPointer, MintKind, 64},
		{ExtensionTokenGroup, MintKind, 80},
		{ExtensionGroupMemberPointer, MintKind, 64},
		{ExtensionTokenGroupMember, MintKind, 72},
		{ExtensionConfidentialMintBurn, MintKind, 196},
		{ExtensionScaledUiAmount, MintKind, 56},
		{ExtensionPausable, MintKind, 33},
		{ExtensionPausableAccount, TokenAccountKind, 0},
	}

	for _, tt := range tests {
		t.Run(tt.ext.String(), func(t *testing.T) {
			if got := tt.ext.BaseKind(); got != tt.kind {
				t.Errorf("BaseKind: expected %d, got %d", tt.kind, got)
			}
			if got := tt.ext.Len(); got != tt.size {
				t.Errorf("Len: expected %d, got %d", tt.size, got)
			}
		})
	}
}

func TestExtensionTypeString(t *testing.T) {
	if got := ExtensionPausable.String(); got != "Pausable" {
		t.Errorf("Expected %q, got %q", "Pausable", got)
	}
	if got := ExtensionType(99).String(); got != "ExtensionType(99)" {
		t.Errorf("Expected %q, got %q", "ExtensionType(99)", got)
	}
}

func TestExtensionRegionStart(t *testing.T) {
	t.Run("mint region", func(t *testing.T) {
		// 82-byte base + 83 padding + account-type byte.
		if got := extensionRegionStart(MintKind); got != 166 {
			t.Errorf("Expected 166, got %d", got)
		}
	})

	t.Run("token account region", func(t *testing.T) {
		// 165-byte base + account-type byte, no padding.
		if got := extensionRegionStart(TokenAccountKind); got != 166 {
			t.Errorf("Expected 166, got %d", got)
		}
	})
}
