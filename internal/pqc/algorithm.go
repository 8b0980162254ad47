// Package pqc provides Go bindings to native PQClean implementations of
// NIST post-quantum algorithms. It supports key-encapsulation mechanisms
// (ML-KEM, HQC-KEM, Classic McEliece) and digital signatures (ML-DSA,
// FN-DSA) exposed by a PQClean shared library.
package pqc

import "fmt"

// AlgorithmID identifies a post-quantum algorithm variant.
type AlgorithmID string

// KEM algorithms (FIPS 203 ML-KEM).
const (
	AlgMLKEM512  AlgorithmID = "ml-kem-512"
	AlgMLKEM768  AlgorithmID = "ml-kem-768"
	AlgMLKEM1024 AlgorithmID = "ml-kem-1024"
)

// KEM algorithms (HQC, NIST round 4).
const (
	AlgHQCKEM128 AlgorithmID = "hqc-kem-128"
	AlgHQCKEM192 AlgorithmID = "hqc-kem-192"
	AlgHQCKEM256 AlgorithmID = "hqc-kem-256"
)

// KEM algorithms (Classic McEliece, NIST round 4).
const (
	AlgMcEliece348864  AlgorithmID = "mceliece348864"
	AlgMcEliece460896  AlgorithmID = "mceliece460896"
	AlgMcEliece6688128 AlgorithmID = "mceliece6688128"
	AlgMcEliece6960119 AlgorithmID = "mceliece6960119"
	AlgMcEliece8192128 AlgorithmID = "mceliece8192128"
)

// Signature algorithms (FIPS 204 ML-DSA).
const (
	AlgMLDSA44 AlgorithmID = "ml-dsa-44"
	AlgMLDSA65 AlgorithmID = "ml-dsa-65"
	AlgMLDSA87 AlgorithmID = "ml-dsa-87"
)

// Signature algorithms (FN-DSA, formerly Falcon).
const (
	AlgFNDSA512  AlgorithmID = "fn-dsa-512"
	AlgFNDSA1024 AlgorithmID = "fn-dsa-1024"
)

// AlgorithmType categorizes algorithms.
type AlgorithmType int

const (
	TypeUnknown AlgorithmType = iota
	TypeKEM
	TypeSignature
)

// String returns the type as a short lowercase word.
func (t AlgorithmType) String() string {
	switch t {
	case TypeKEM:
		return "kem"
	case TypeSignature:
		return "signature"
	default:
		return "unknown"
	}
}

// Descriptor holds the fixed artifact sizes for one algorithm variant.
// For signature algorithms SignatureSize is an upper bound: several
// variants (FN-DSA in particular) produce variable-length signatures.
type Descriptor struct {
	ID   AlgorithmID
	Type AlgorithmType

	PublicKeySize int
	SecretKeySize int

	// KEM only.
	CiphertextSize   int
	SharedSecretSize int

	// Signature only.
	SignatureSize int

	Description string
}

// descriptors maps AlgorithmID to its fixed sizes. The values match the
// PQClean clean implementations the native library is built from.
var descriptors = map[AlgorithmID]Descriptor{
	// ML-KEM (FIPS 203)
	AlgMLKEM512: {
		ID: AlgMLKEM512, Type: TypeKEM,
		PublicKeySize: 800, SecretKeySize: 1632,
		CiphertextSize: 768, SharedSecretSize: 32,
		Description: "ML-KEM-512 (NIST Level 1)",
	},
	AlgMLKEM768: {
		ID: AlgMLKEM768, Type: TypeKEM,
		PublicKeySize: 1184, SecretKeySize: 2400,
		CiphertextSize: 1088, SharedSecretSize: 32,
		Description: "ML-KEM-768 (NIST Level 3)",
	},
	AlgMLKEM1024: {
		ID: AlgMLKEM1024, Type: TypeKEM,
		PublicKeySize: 1568, SecretKeySize: 3168,
		CiphertextSize: 1568, SharedSecretSize: 32,
		Description: "ML-KEM-1024 (NIST Level 5)",
	},

	// HQC-KEM
	AlgHQCKEM128: {
		ID: AlgHQCKEM128, Type: TypeKEM,
		PublicKeySize: 2249, SecretKeySize: 2305,
		CiphertextSize: 4433, SharedSecretSize: 64,
		Description: "HQC-128 (NIST Level 1)",
	},
	AlgHQCKEM192: {
		ID: AlgHQCKEM192, Type: TypeKEM,
		PublicKeySize: 4522, SecretKeySize: 4586,
		CiphertextSize: 8978, SharedSecretSize: 64,
		Description: "HQC-192 (NIST Level 3)",
	},
	AlgHQCKEM256: {
		ID: AlgHQCKEM256, Type: TypeKEM,
		PublicKeySize: 7245, SecretKeySize: 7317,
		CiphertextSize: 14421, SharedSecretSize: 64,
		Description: "HQC-256 (NIST Level 5)",
	},

	// Classic McEliece
	AlgMcEliece348864: {
		ID: AlgMcEliece348864, Type: TypeKEM,
		PublicKeySize: 261120, SecretKeySize: 6492,
		CiphertextSize: 96, SharedSecretSize: 32,
		Description: "Classic McEliece 348864 (NIST Level 1)",
	},
	AlgMcEliece460896: {
		ID: AlgMcEliece460896, Type: TypeKEM,
		PublicKeySize: 524160, SecretKeySize: 13608,
		CiphertextSize: 156, SharedSecretSize: 32,
		Description: "Classic McEliece 460896 (NIST Level 3)",
	},
	AlgMcEliece6688128: {
		ID: AlgMcEliece6688128, Type: TypeKEM,
		PublicKeySize: 1044992, SecretKeySize: 13932,
		CiphertextSize: 208, SharedSecretSize: 32,
		Description: "Classic McEliece 6688128 (NIST Level 5)",
	},
	AlgMcEliece6960119: {
		ID: AlgMcEliece6960119, Type: TypeKEM,
		PublicKeySize: 1047319, SecretKeySize: 13948,
		CiphertextSize: 194, SharedSecretSize: 32,
		Description: "Classic McEliece 6960119 (NIST Level 5)",
	},
	AlgMcEliece8192128: {
		ID: AlgMcEliece8192128, Type: TypeKEM,
		PublicKeySize: 1357824, SecretKeySize: 14120,
		CiphertextSize: 208, SharedSecretSize: 32,
		Description: "Classic McEliece 8192128 (NIST Level 5)",
	},

	// ML-DSA (FIPS 204)
	AlgMLDSA44: {
		ID: AlgMLDSA44, Type: TypeSignature,
		PublicKeySize: 1312, SecretKeySize: 2560,
		SignatureSize: 2420,
		Description:   "ML-DSA-44 (NIST Level 2)",
	},
	AlgMLDSA65: {
		ID: AlgMLDSA65, Type: TypeSignature,
		PublicKeySize: 1952, SecretKeySize: 4032,
		SignatureSize: 3309,
		Description:   "ML-DSA-65 (NIST Level 3)",
	},
	AlgMLDSA87: {
		ID: AlgMLDSA87, Type: TypeSignature,
		PublicKeySize: 2592, SecretKeySize: 4896,
		SignatureSize: 4627,
		Description:   "ML-DSA-87 (NIST Level 5)",
	},

	// FN-DSA (Falcon)
	AlgFNDSA512: {
		ID: AlgFNDSA512, Type: TypeSignature,
		PublicKeySize: 897, SecretKeySize: 1281,
		SignatureSize: 752,
		Description:   "FN-DSA-512 (NIST Level 1)",
	},
	AlgFNDSA1024: {
		ID: AlgFNDSA1024, Type: TypeSignature,
		PublicKeySize: 1793, SecretKeySize: 2305,
		SignatureSize: 1462,
		Description:   "FN-DSA-1024 (NIST Level 5)",
	},
}

// IsValid returns true if the algorithm is recognized.
func (a AlgorithmID) IsValid() bool {
	_, ok := descriptors[a]
	return ok
}

// Type returns the algorithm type.
func (a AlgorithmID) Type() AlgorithmType {
	if d, ok := descriptors[a]; ok {
		return d.Type
	}
	return TypeUnknown
}

// IsKEM returns true for Key Encapsulation Mechanism algorithms.
func (a AlgorithmID) IsKEM() bool {
	return a.Type() == TypeKEM
}

// IsSignature returns true for signature algorithms.
func (a AlgorithmID) IsSignature() bool {
	return a.Type() == TypeSignature
}

// Descriptor returns the size descriptor for this algorithm.
func (a AlgorithmID) Descriptor() (Descriptor, error) {
	if d, ok := descriptors[a]; ok {
		return d, nil
	}
	return Descriptor{}, fmt.Errorf("unknown algorithm: %s", a)
}

// Description returns a human-readable description of the algorithm.
func (a AlgorithmID) Description() string {
	if d, ok := descriptors[a]; ok {
		return d.Description
	}
	return "Unknown algorithm"
}

// String returns the algorithm identifier as a string.
func (a AlgorithmID) String() string {
	return string(a)
}

// ParseAlgorithm parses a string into an AlgorithmID.
// Returns an error if the algorithm is not recognized.
func ParseAlgorithm(s string) (AlgorithmID, error) {
	alg := AlgorithmID(s)
	if !alg.IsValid() {
		return "", fmt.Errorf("unknown algorithm: %s", s)
	}
	return alg, nil
}

// AllAlgorithms returns a list of all supported algorithm IDs.
func AllAlgorithms() []AlgorithmID {
	result := make([]AlgorithmID, 0, len(descriptors))
	for alg := range descriptors {
		result = append(result, alg)
	}
	return result
}

// KEMAlgorithms returns all KEM algorithms.
func KEMAlgorithms() []AlgorithmID {
	var result []AlgorithmID
	for alg := range descriptors {
		if alg.IsKEM() {
			result = append(result, alg)
		}
	}
	return result
}

// SignatureAlgorithms returns all signature algorithms.
func SignatureAlgorithms() []AlgorithmID {
	var result []AlgorithmID
	for alg := range descriptors {
		if alg.IsSignature() {
			result = append(result, alg)
		}
	}
	return result
}
