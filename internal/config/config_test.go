package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// Configuration Tests
// =============================================================================

func TestU_Default(t *testing.T) {
	cfg := Default()
	if cfg.KATDir != "./KATs" {
		t.Errorf("KATDir = %q, want ./KATs", cfg.KATDir)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.Library != "" || cfg.MaxVectors != 0 || cfg.CrossCheck {
		t.Errorf("unexpected non-zero defaults: %+v", cfg)
	}
}

func TestU_Load(t *testing.T) {
	t.Run("[Unit] Load: YAML overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pqbind.yaml")
		content := `library: /opt/pqclean/libpqclean.so
kat_dir: /opt/pqclean/KATs
algorithms:
  - ml-kem-768
  - ml-dsa-44
max_vectors: 25
cross_check: true
listen: 127.0.0.1:9090
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Library != "/opt/pqclean/libpqclean.so" {
			t.Errorf("Library = %q", cfg.Library)
		}
		if cfg.KATDir != "/opt/pqclean/KATs" {
			t.Errorf("KATDir = %q", cfg.KATDir)
		}
		if len(cfg.Algorithms) != 2 || cfg.Algorithms[0] != "ml-kem-768" {
			t.Errorf("Algorithms = %v", cfg.Algorithms)
		}
		if cfg.MaxVectors != 25 || !cfg.CrossCheck {
			t.Errorf("MaxVectors/CrossCheck = %d/%v", cfg.MaxVectors, cfg.CrossCheck)
		}
		if cfg.Listen != "127.0.0.1:9090" {
			t.Errorf("Listen = %q", cfg.Listen)
		}
	})

	t.Run("[Unit] Load: partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pqbind.yaml")
		if err := os.WriteFile(path, []byte("library: /tmp/lib.so\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Library != "/tmp/lib.so" || cfg.KATDir != "./KATs" || cfg.Listen != ":8080" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("[Unit] Load: missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("Load() succeeded on a missing file")
		}
	})

	t.Run("[Unit] Load: malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pqbind.yaml")
		if err := os.WriteFile(path, []byte("library: [unterminated\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() succeeded on malformed YAML")
		}
	})
}

func TestU_ApplyEnv(t *testing.T) {
	t.Setenv("PQBIND_LIB", "/env/lib.so")
	t.Setenv("PQBIND_KAT_DIR", "/env/KATs")
	t.Setenv("PQBIND_ADDR", ":7070")

	cfg := Default()
	cfg.Library = "/file/lib.so"
	cfg.ApplyEnv()

	if cfg.Library != "/env/lib.so" {
		t.Errorf("Library = %q, want env override", cfg.Library)
	}
	if cfg.KATDir != "/env/KATs" {
		t.Errorf("KATDir = %q, want env override", cfg.KATDir)
	}
	if cfg.Listen != ":7070" {
		t.Errorf("Listen = %q, want env override", cfg.Listen)
	}
}

func TestU_ApplyEnv_Unset(t *testing.T) {
	t.Setenv("PQBIND_LIB", "")
	t.Setenv("PQBIND_KAT_DIR", "")
	t.Setenv("PQBIND_ADDR", "")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.KATDir != "./KATs" || cfg.Listen != ":8080" {
		t.Errorf("empty env vars must not clobber defaults: %+v", cfg)
	}
}
