package main

import (
	"strings"
	"testing"
)

// =============================================================================
// List Command Tests
// =============================================================================

func TestF_List(t *testing.T) {
	defer resetListFlags()

	out, err := executeCommand(rootCmd, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	t.Run("[Functional] list: table carries every algorithm", func(t *testing.T) {
		for _, want := range []string{
			"ALGORITHM", "ml-kem-512", "ml-kem-1024", "hqc-kem-256",
			"mceliece8192128", "ml-dsa-87", "fn-dsa-512",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("[Functional] list: sizes match the descriptors", func(t *testing.T) {
		for _, line := range strings.Split(out, "\n") {
			if !strings.HasPrefix(line, "ml-kem-768") {
				continue
			}
			for _, want := range []string{"1184", "2400", "1088", "32"} {
				if !strings.Contains(line, want) {
					t.Errorf("ml-kem-768 row missing %q: %q", want, line)
				}
			}
			return
		}
		t.Fatalf("ml-kem-768 row not found:\n%s", out)
	})

	t.Run("[Functional] list: symbols hidden by default", func(t *testing.T) {
		if strings.Contains(out, "PQCLEAN_") {
			t.Errorf("symbol names printed without --symbols:\n%s", out)
		}
	})
}

func TestF_List_Symbols(t *testing.T) {
	defer resetListFlags()

	out, err := executeCommand(rootCmd, "list", "--symbols")
	if err != nil {
		t.Fatalf("list --symbols failed: %v", err)
	}

	for _, want := range []string{
		"PQCLEAN_MLKEM768_CLEAN_crypto_kem_keypair",
		"PQCLEAN_MLKEM768_CLEAN_crypto_kem_enc",
		"PQCLEAN_HQC128_CLEAN_crypto_kem_dec",
		"PQCLEAN_MLDSA44_CLEAN_crypto_sign_signature",
		"PQCLEAN_FALCON512_CLEAN_crypto_sign_verify",
		"PQCLEAN_MCELIECE348864_CLEAN_crypto_kem_keypair",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing symbol %q", want)
		}
	}
}
