package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/remiblancher/pqbind/internal/config"
	"github.com/remiblancher/pqbind/internal/kat"
	"github.com/remiblancher/pqbind/internal/pqc"
)

// Validate command flags
var (
	validateLib        string
	validateKATDir     string
	validateConfig     string
	validateMax        int
	validateCrossCheck bool
	validateFormat     string
	validateOut        string
)

// newBinder builds the production binding; tests substitute a stub.
var newBinder = func(path string) pqc.Binder {
	return pqc.NewBinding(path)
}

var validateCmd = &cobra.Command{
	Use:   "validate [algorithms...]",
	Short: "Validate a native library against NIST KAT vectors",
	Long: `Validate a native PQClean library against NIST KAT vectors.

Without arguments every algorithm that has KAT vectors is validated.
The command exits non-zero if any vector fails or an algorithm has no
usable vectors.

Environment variables:
  PQBIND_LIB      Path to the native library
  PQBIND_KAT_DIR  Root of the KAT vector tree`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateLib, "lib", "", "Path to the PQClean shared library")
	validateCmd.Flags().StringVar(&validateKATDir, "kat-dir", "", "Root of the KAT vector tree")
	validateCmd.Flags().StringVar(&validateConfig, "config", "", "YAML config file")
	validateCmd.Flags().IntVar(&validateMax, "max-vectors", 0, "Vectors driven per file (default 10)")
	validateCmd.Flags().BoolVar(&validateCrossCheck, "cross-check", false, "Also cross-check against the pure-Go reference")
	validateCmd.Flags().StringVar(&validateFormat, "format", "text", "Report format: text, json or cbor")
	validateCmd.Flags().StringVar(&validateOut, "out", "", "Write the report to a file instead of stdout")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := validateSettings()
	if err != nil {
		return err
	}

	algs, err := selectAlgorithms(args, cfg.Algorithms)
	if err != nil {
		return err
	}

	logOut := io.Discard
	if validateFormat == "text" && validateOut == "" {
		logOut = cmd.OutOrStdout()
	}
	v := &kat.Validator{
		KATDir:     cfg.KATDir,
		MaxVectors: cfg.MaxVectors,
		CrossCheck: cfg.CrossCheck,
		Log:        logOut,
	}

	binder := newBinder(cfg.Library)
	report := kat.Report{
		Library:     cfg.Library,
		KATDir:      cfg.KATDir,
		GeneratedAt: time.Now().UTC(),
	}

	for _, alg := range algs {
		report.Results = append(report.Results, validateOne(v, binder, alg))
	}

	out := cmd.OutOrStdout()
	if validateOut != "" {
		f, err := os.Create(validateOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch validateFormat {
	case "text":
		err = report.WriteText(out)
	case "json":
		err = report.WriteJSON(out)
	case "cbor":
		err = report.WriteCBOR(out)
	default:
		return fmt.Errorf("unknown format: %s (want text, json or cbor)", validateFormat)
	}
	if err != nil {
		return err
	}

	if report.Failed() {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// validateSettings merges defaults, config file, environment and flags.
func validateSettings() (config.Config, error) {
	cfg := config.Default()
	if validateConfig != "" {
		loaded, err := config.Load(validateConfig)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if validateLib != "" {
		cfg.Library = validateLib
	}
	if validateKATDir != "" {
		cfg.KATDir = validateKATDir
	}
	if validateMax > 0 {
		cfg.MaxVectors = validateMax
	}
	if validateCrossCheck {
		cfg.CrossCheck = true
	}
	if cfg.Library == "" {
		return cfg, fmt.Errorf("native library path required (--lib, config file or PQBIND_LIB)")
	}
	return cfg, nil
}

// selectAlgorithms resolves the algorithm set: explicit args win, then
// the config file, then every algorithm with KAT vectors.
func selectAlgorithms(args, configured []string) ([]pqc.AlgorithmID, error) {
	names := args
	if len(names) == 0 {
		names = configured
	}
	if len(names) == 0 {
		algs := kat.SupportedAlgorithms()
		sort.Slice(algs, func(i, j int) bool { return algs[i] < algs[j] })
		return algs, nil
	}

	algs := make([]pqc.AlgorithmID, 0, len(names))
	for _, name := range names {
		alg, err := pqc.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

// validateOne binds and validates one algorithm; binding failures become
// a zero-total result rather than aborting the run.
func validateOne(v *kat.Validator, binder pqc.Binder, alg pqc.AlgorithmID) kat.Result {
	switch alg.Type() {
	case pqc.TypeKEM:
		k, err := pqc.NewKEM(binder, alg)
		if err != nil {
			return kat.Result{Algorithm: alg, Err: err.Error()}
		}
		return v.ValidateKEM(k)
	case pqc.TypeSignature:
		s, err := pqc.NewSigner(binder, alg)
		if err != nil {
			return kat.Result{Algorithm: alg, Err: err.Error()}
		}
		return v.ValidateSigner(s)
	default:
		return kat.Result{Algorithm: alg, Err: "unknown algorithm type"}
	}
}
