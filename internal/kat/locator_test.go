package kat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/remiblancher/pqbind/internal/pqc"
)

// =============================================================================
// KAT File Locator Tests
// =============================================================================

func TestU_Locate(t *testing.T) {
	t.Run("[Unit] Locate: finds request/response pair", func(t *testing.T) {
		dir := t.TempDir()
		writeKATPair(t, dir, "NIST-ml-kem/KAT", "kyber768", "count = 0\n")

		req, rsp, err := Locate(dir, pqc.AlgMLKEM768)
		if err != nil {
			t.Fatalf("Locate() error: %v", err)
		}
		if filepath.Base(req) != "kyber768.req" || filepath.Base(rsp) != "kyber768.rsp" {
			t.Errorf("Locate() = %q, %q", req, rsp)
		}
	})

	t.Run("[Unit] Locate: matches nested submission layout", func(t *testing.T) {
		dir := t.TempDir()
		writeKATPair(t, dir, "NIST-hqc-kem/KATs/Reference_Implementation/hqc-128", "hqc-128_kat", "count = 0\n")

		req, rsp, err := Locate(dir, pqc.AlgHQCKEM128)
		if err != nil {
			t.Fatalf("Locate() error: %v", err)
		}
		if !strings.Contains(req, "hqc-128") || !strings.Contains(rsp, "hqc-128") {
			t.Errorf("Locate() = %q, %q", req, rsp)
		}
	})

	t.Run("[Unit] Locate: missing response file", func(t *testing.T) {
		dir := t.TempDir()
		full := filepath.Join(dir, "NIST-ml-kem/KAT")
		if err := os.MkdirAll(full, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(full, "kyber768.req"), []byte("#\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, _, err := Locate(dir, pqc.AlgMLKEM768)
		if !errors.Is(err, ErrKATNotFound) {
			t.Errorf("Locate() error = %v, want ErrKATNotFound", err)
		}
	})

	t.Run("[Unit] Locate: empty tree", func(t *testing.T) {
		_, _, err := Locate(t.TempDir(), pqc.AlgMLKEM512)
		if !errors.Is(err, ErrKATNotFound) {
			t.Errorf("Locate() error = %v, want ErrKATNotFound", err)
		}
	})

	t.Run("[Unit] Locate: algorithm without a file pattern", func(t *testing.T) {
		_, _, err := Locate(t.TempDir(), pqc.AlgMcEliece348864)
		if err == nil || errors.Is(err, ErrKATNotFound) {
			t.Errorf("Locate() error = %v, want pattern error", err)
		}
	})
}

func TestU_SupportedAlgorithms(t *testing.T) {
	algs := SupportedAlgorithms()
	if len(algs) != 9 {
		t.Fatalf("SupportedAlgorithms() returned %d algorithms, want 9", len(algs))
	}
	for _, alg := range algs {
		if !alg.IsValid() {
			t.Errorf("unknown algorithm in pattern table: %s", alg)
		}
	}
}

func TestU_Fingerprint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kyber512.rsp")
	if err := os.WriteFile(path, []byte("count = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fp, err := Fingerprint(path)
	if err != nil {
		t.Fatalf("Fingerprint() error: %v", err)
	}
	if len(fp) != 64 {
		t.Errorf("Fingerprint() length = %d, want 64 hex characters", len(fp))
	}

	same, err := Fingerprint(path)
	if err != nil || same != fp {
		t.Errorf("Fingerprint() not stable: %q vs %q", fp, same)
	}

	if _, err := Fingerprint(filepath.Join(dir, "missing.rsp")); err == nil {
		t.Error("Fingerprint() succeeded on a missing file")
	}
}
