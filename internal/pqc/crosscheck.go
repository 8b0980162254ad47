// Package pqc provides Go bindings to native PQClean implementations.
// This file cross-checks native output against the pure-Go reference
// implementations in cloudflare/circl. ML-KEM and ML-DSA use the FIPS
// standard encodings on both sides, so artifacts interoperate directly;
// families without a circl reference report ErrNoReference.
package pqc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem512"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// ErrNoReference is returned when no pure-Go reference implementation
// exists for an algorithm.
var ErrNoReference = errors.New("no pure-Go reference implementation")

// crossCheckMessage is the message signed during signature cross-checks.
var crossCheckMessage = []byte("pqbind reference cross-check message")

// ReferenceKEM returns the circl scheme matching alg, or nil.
func ReferenceKEM(alg AlgorithmID) kem.Scheme {
	switch alg {
	case AlgMLKEM512:
		return mlkem512.Scheme()
	case AlgMLKEM768:
		return mlkem768.Scheme()
	case AlgMLKEM1024:
		return mlkem1024.Scheme()
	default:
		return nil
	}
}

// ReferenceSign returns the circl scheme matching alg, or nil.
func ReferenceSign(alg AlgorithmID) sign.Scheme {
	switch alg {
	case AlgMLDSA44:
		return mldsa44.Scheme()
	case AlgMLDSA65:
		return mldsa65.Scheme()
	case AlgMLDSA87:
		return mldsa87.Scheme()
	default:
		return nil
	}
}

// CrossCheckKEM checks a native KEM against the circl reference: a
// native keypair must accept an encapsulation produced by the reference,
// and decapsulate it to the reference's shared secret.
func CrossCheckKEM(k *KEM) error {
	scheme := ReferenceKEM(k.Algorithm())
	if scheme == nil {
		return fmt.Errorf("%w for %s", ErrNoReference, k.Algorithm())
	}

	pk, sk, err := k.Keypair()
	if err != nil {
		return err
	}
	refPK, err := scheme.UnmarshalBinaryPublicKey(pk)
	if err != nil {
		return fmt.Errorf("reference rejected native public key: %w", err)
	}
	ct, want, err := scheme.Encapsulate(refPK)
	if err != nil {
		return fmt.Errorf("reference encapsulation failed: %w", err)
	}
	got, err := k.Decapsulate(ct, sk)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s: native decapsulation disagrees with reference shared secret", k.Algorithm())
	}
	return nil
}

// CrossCheckSign checks a native signer against the circl reference: a
// signature produced natively must verify under the reference.
func CrossCheckSign(s *Signer) error {
	scheme := ReferenceSign(s.Algorithm())
	if scheme == nil {
		return fmt.Errorf("%w for %s", ErrNoReference, s.Algorithm())
	}

	pk, sk, err := s.Keypair()
	if err != nil {
		return err
	}
	sig, err := s.Sign(crossCheckMessage, sk)
	if err != nil {
		return err
	}
	refPK, err := scheme.UnmarshalBinaryPublicKey(pk)
	if err != nil {
		return fmt.Errorf("reference rejected native public key: %w", err)
	}
	if !scheme.Verify(refPK, crossCheckMessage, sig, nil) {
		return fmt.Errorf("%s: native signature rejected by reference verifier", s.Algorithm())
	}
	return nil
}
