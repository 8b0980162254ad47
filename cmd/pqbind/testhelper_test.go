package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/remiblancher/pqbind/internal/pqc"
	"github.com/remiblancher/pqbind/internal/pqc/pqctest"
)

// executeCommand executes a Cobra command with the given args and returns output.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err = root.Execute()
	return buf.String(), err
}

// resetValidateFlags restores the validate command's package-level flag
// state between tests.
func resetValidateFlags() {
	validateLib = ""
	validateKATDir = ""
	validateConfig = ""
	validateMax = 0
	validateCrossCheck = false
	validateFormat = "text"
	validateOut = ""
}

// resetListFlags restores the list command's flag state between tests.
func resetListFlags() {
	listSymbols = false
}

// useStubBinder swaps the production binder for the circl-backed stub
// for the duration of a test.
func useStubBinder(t *testing.T) {
	t.Helper()
	orig := newBinder
	newBinder = func(string) pqc.Binder { return pqctest.Binder{} }
	t.Cleanup(func() { newBinder = orig })
}

// fixedKEMBinder returns deterministic bytes so CLI runs can be matched
// against the synthetic vector files writeKEMVectors produces.
type fixedKEMBinder struct{}

func (fixedKEMBinder) ResolveKEM(d pqc.Descriptor) (pqc.KEMFuncs, error) {
	fill := func(b []byte, v byte) {
		for i := range b {
			b[i] = v
		}
	}
	return pqc.KEMFuncs{
		Keypair: func(pk, sk []byte) int { fill(pk, 0x01); fill(sk, 0x02); return 0 },
		Enc:     func(ct, ss, pk []byte) int { fill(ct, 0x03); fill(ss, 0x04); return 0 },
		Dec:     func(ss, ct, sk []byte) int { fill(ss, 0x04); return 0 },
	}, nil
}

func (fixedKEMBinder) ResolveSign(d pqc.Descriptor) (pqc.SignFuncs, error) {
	return pqc.SignFuncs{}, fmt.Errorf("signatures not supported")
}

// writeKEMVectors writes an ml-kem-512 KAT pair under dir whose sizes
// match the descriptor and whose shared secret matches fixedKEMBinder's
// output.
func writeKEMVectors(t *testing.T, dir string, n int) {
	t.Helper()
	katDir := filepath.Join(dir, "NIST-ml-kem", "KAT")
	if err := os.MkdirAll(katDir, 0o755); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	b.WriteString("# kyber512\n\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "count = %d\n", i)
		fmt.Fprintf(&b, "seed = %s\n", strings.Repeat("00", 48))
		fmt.Fprintf(&b, "pk = %s\n", strings.Repeat("01", 800))
		fmt.Fprintf(&b, "sk = %s\n", strings.Repeat("02", 1632))
		fmt.Fprintf(&b, "ct = %s\n", strings.Repeat("03", 768))
		fmt.Fprintf(&b, "ss = %s\n\n", strings.Repeat("04", 32))
	}
	if err := os.WriteFile(filepath.Join(katDir, "kyber512.req"), []byte("# request\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(katDir, "kyber512.rsp"), []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}
