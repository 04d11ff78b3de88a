package token2022

import (
	"errors"
	"testing"
)

func TestGetTokenMetadata(t *testing.T) {
	meta, err := GetTokenMetadata(pyusdMint(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if meta.Name != "PayPal USD" {
		t.Errorf("Name: expected %q, got %q", "PayPal USD", meta.Name)
	}
	if meta.Symbol != "PYUSD" {
		t.Errorf("Symbol: expected %q, got %q", "PYUSD", meta.Symbol)
	}
	if meta.Uri != "https://token-metadata.paxos.com/pyusd_metadata/prod/solana/pyusd_metadata.json" {
		t.Errorf("Unexpected URI %q", meta.Uri)
	}
	if !meta.UpdateAuthority.Equals(testAuthority) {
		t.Error("Update authority mismatch")
	}
	if !meta.Mint.Equals(testMetadataAddress) {
		t.Error("Mint mismatch")
	}
}

func TestDecodeTokenMetadata(t *testing.T) {
	t.Run("trailing bytes are tolerated", func(t *testing.T) {
		body := append(pyusdMetadataBody(), 0xAA, 0xBB, 0xCC)
		meta, err := DecodeTokenMetadata(body)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if meta.Symbol != "PYUSD" {
			t.Errorf("Symbol: expected %q, got %q", "PYUSD", meta.Symbol)
		}
	})

	t.Run("truncated at every boundary", func(t *testing.T) {
		body := pyusdMetadataBody()
		// The four trailing vector bytes are not part of the declared
		// fields; cutting inside them still decodes.
		for cut := 0; cut < len(body)-4; cut++ {
			if _, err := DecodeTokenMetadata(body[:cut]); !errors.Is(err, ErrInvalidMetadata) {
				t.Fatalf("Cut %d: expected ErrInvalidMetadata, got %v", cut, err)
			}
		}
	})

	t.Run("string length past end", func(t *testing.T) {
		body := pyusdMetadataBody()
		// Inflate the name length prefix beyond the body.
		body[64] = 0xFF
		_, err := DecodeTokenMetadata(body)
		if !errors.Is(err, ErrInvalidMetadata) {
			t.Fatalf("Expected ErrInvalidMetadata, got %v", err)
		}
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Fatal("Expected DecodeError")
		}
		if decErr.Type != ExtensionTokenMetadata {
			t.Errorf("Expected type %s, got %s", ExtensionTokenMetadata, decErr.Type)
		}
	})
}

func TestGetTokenMetadataAbsent(t *testing.T) {
	_, err := GetTokenMetadata(ownedMint())
	if !errors.Is(err, ErrExtensionNotFound) {
		t.Errorf("Expected ErrExtensionNotFound, got %v", err)
	}
}
