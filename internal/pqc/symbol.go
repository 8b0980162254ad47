// Package pqc provides Go bindings to native PQClean implementations.
// This file maps algorithm identifiers to the exact symbol names the
// PQClean shared library exports.
package pqc

import (
	"fmt"
	"strings"
)

// Operation identifies one native entry point of an algorithm.
type Operation string

const (
	OpKeypair     Operation = "keypair"
	OpEncapsulate Operation = "enc"
	OpDecapsulate Operation = "dec"
	OpSign        Operation = "signature"
	OpVerify      Operation = "verify"
)

// symbolPrefixOverrides lists algorithms whose exported symbol prefix does
// not follow the default uppercase-and-strip rule. Two families need this:
// HQC drops the "KEM" from the canonical name and keeps the security level
// right after the family tag, and FN-DSA symbols still use the FALCON
// pre-standardization name. New families are expected to need their own
// entry rather than a new structural rule.
var symbolPrefixOverrides = map[AlgorithmID]string{
	AlgHQCKEM128: "PQCLEAN_HQC128_CLEAN",
	AlgHQCKEM192: "PQCLEAN_HQC192_CLEAN",
	AlgHQCKEM256: "PQCLEAN_HQC256_CLEAN",

	AlgFNDSA512:  "PQCLEAN_FALCON512_CLEAN",
	AlgFNDSA1024: "PQCLEAN_FALCON1024_CLEAN",
}

// symbolPrefix returns the PQCLEAN_<NAME>_CLEAN prefix for an algorithm.
func symbolPrefix(alg AlgorithmID) (string, error) {
	if !alg.IsValid() {
		return "", fmt.Errorf("unknown algorithm: %s", alg)
	}
	if prefix, ok := symbolPrefixOverrides[alg]; ok {
		return prefix, nil
	}
	name := strings.ReplaceAll(strings.ToUpper(string(alg)), "-", "")
	return fmt.Sprintf("PQCLEAN_%s_CLEAN", name), nil
}

// SymbolName returns the exact symbol the native library exports for the
// given algorithm and operation. It is a pure function: no library needs
// to be loaded, and unresolvable combinations fail rather than guess.
func SymbolName(alg AlgorithmID, op Operation) (string, error) {
	prefix, err := symbolPrefix(alg)
	if err != nil {
		return "", err
	}

	switch alg.Type() {
	case TypeKEM:
		switch op {
		case OpKeypair:
			return prefix + "_crypto_kem_keypair", nil
		case OpEncapsulate:
			return prefix + "_crypto_kem_enc", nil
		case OpDecapsulate:
			return prefix + "_crypto_kem_dec", nil
		}
	case TypeSignature:
		switch op {
		case OpKeypair:
			return prefix + "_crypto_sign_keypair", nil
		case OpSign:
			return prefix + "_crypto_sign_signature", nil
		case OpVerify:
			return prefix + "_crypto_sign_verify", nil
		}
	}
	return "", fmt.Errorf("operation %q is not defined for %s (%s)", op, alg, alg.Type())
}
