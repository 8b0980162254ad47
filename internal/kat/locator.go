// Package kat parses NIST Known-Answer-Test response files and validates
// native implementations against them.
// This file locates the .req/.rsp file pair for an algorithm. The KAT
// trees keep the submission-era naming (kyber, dilithium), so the mapping
// from canonical identifiers is table-driven.
package kat

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/remiblancher/pqbind/internal/pqc"
)

// ErrKATNotFound is returned when the .req or .rsp file for an algorithm
// is absent. Callers distinguish it from parse failures.
var ErrKATNotFound = errors.New("KAT files not found")

// katPattern names the filename stem and the directory layouts one
// algorithm's KAT files may live under, relative to the KAT root.
type katPattern struct {
	stem string
	dirs []string
}

var katPatterns = map[pqc.AlgorithmID]katPattern{
	pqc.AlgMLKEM512:  {"kyber512", []string{"NIST-ml-kem/KAT"}},
	pqc.AlgMLKEM768:  {"kyber768", []string{"NIST-ml-kem/KAT"}},
	pqc.AlgMLKEM1024: {"kyber1024", []string{"NIST-ml-kem/KAT"}},

	pqc.AlgMLDSA44: {"dilithium2", []string{"NIST-ml-dsa/KAT"}},
	pqc.AlgMLDSA65: {"dilithium3", []string{"NIST-ml-dsa/KAT"}},
	pqc.AlgMLDSA87: {"dilithium5", []string{"NIST-ml-dsa/KAT"}},

	pqc.AlgHQCKEM128: {"hqc-128", []string{
		"NIST-hqc-kem/KATs/Optimized_Implementation",
		"NIST-hqc-kem/KATs/Reference_Implementation",
	}},
	pqc.AlgHQCKEM192: {"hqc-192", []string{
		"NIST-hqc-kem/KATs/Optimized_Implementation",
		"NIST-hqc-kem/KATs/Reference_Implementation",
	}},
	pqc.AlgHQCKEM256: {"hqc-256", []string{
		"NIST-hqc-kem/KATs/Optimized_Implementation",
		"NIST-hqc-kem/KATs/Reference_Implementation",
	}},
}

// SupportedAlgorithms returns the algorithms that have a KAT file
// pattern, i.e. the ones Validate can run.
func SupportedAlgorithms() []pqc.AlgorithmID {
	result := make([]pqc.AlgorithmID, 0, len(katPatterns))
	for alg := range katPatterns {
		result = append(result, alg)
	}
	return result
}

// Locate finds the request/response file pair for alg under katDir.
// Both files must exist; a missing file reports ErrKATNotFound
// independently of whether the other parses.
func Locate(katDir string, alg pqc.AlgorithmID) (reqPath, rspPath string, err error) {
	pattern, ok := katPatterns[alg]
	if !ok {
		return "", "", fmt.Errorf("no KAT file pattern for algorithm: %s", alg)
	}

	for _, dir := range pattern.dirs {
		root := filepath.Join(katDir, dir)
		if _, statErr := os.Stat(root); statErr != nil {
			continue
		}
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			if !strings.Contains(d.Name(), pattern.stem) {
				return nil
			}
			switch filepath.Ext(d.Name()) {
			case ".req":
				reqPath = path
			case ".rsp":
				rspPath = path
			}
			return nil
		})
		if walkErr != nil {
			return "", "", fmt.Errorf("searching %s: %w", root, walkErr)
		}
		if reqPath != "" && rspPath != "" {
			return reqPath, rspPath, nil
		}
	}
	return "", "", fmt.Errorf("%w for %s under %s", ErrKATNotFound, alg, katDir)
}

// Fingerprint returns the SHA3-256 digest of a KAT file, hex encoded,
// so a validation report pins the exact vectors it ran against.
func Fingerprint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
