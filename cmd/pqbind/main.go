// Command pqbind validates native PQClean shared libraries against NIST
// Known-Answer-Test vectors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pqbind",
	Short: "Bind and validate native post-quantum crypto libraries",
	Long: `pqbind binds a PQClean shared library and validates it against NIST
Known-Answer-Test (KAT) vectors.

Supported algorithms:
  KEM:       ML-KEM-512/768/1024 (FIPS 203), HQC-128/192/256,
             Classic McEliece (348864 .. 8192128)
  Signature: ML-DSA-44/65/87 (FIPS 204), FN-DSA-512/1024

Examples:
  # List supported algorithms and their artifact sizes
  pqbind list

  # Validate every algorithm with KAT vectors
  pqbind validate --lib ./libpqclean.so --kat-dir ./KATs

  # Validate one algorithm and emit a JSON report
  pqbind validate ml-kem-768 --lib ./libpqclean.so --format json

  # Serve validation over HTTP
  pqbind serve --lib ./libpqclean.so --kat-dir ./KATs --addr :8080`,
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}
