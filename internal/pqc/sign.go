// Package pqc provides Go bindings to native PQClean implementations.
// This file implements the signature facade over the resolved native
// entry points.
package pqc

import "fmt"

// Signer wraps the native signature entry points for one algorithm
// variant. Construction resolves all three operations eagerly.
type Signer struct {
	desc Descriptor
	fn   SignFuncs
}

// NewSigner binds the signature facade for alg using the given binder.
func NewSigner(b Binder, alg AlgorithmID) (*Signer, error) {
	desc, err := alg.Descriptor()
	if err != nil {
		return nil, err
	}
	if desc.Type != TypeSignature {
		return nil, fmt.Errorf("%s is not a signature algorithm", alg)
	}
	fn, err := b.ResolveSign(desc)
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", alg, err)
	}
	return &Signer{desc: desc, fn: fn}, nil
}

// Algorithm returns the algorithm this facade is bound to.
func (s *Signer) Algorithm() AlgorithmID { return s.desc.ID }

// Descriptor returns the size descriptor.
func (s *Signer) Descriptor() Descriptor { return s.desc }

// Keypair generates a fresh keypair.
func (s *Signer) Keypair() (publicKey, secretKey []byte, err error) {
	pk := make([]byte, s.desc.PublicKeySize)
	sk := make([]byte, s.desc.SecretKeySize)
	if status := s.fn.Keypair(pk, sk); status != 0 {
		return nil, nil, &NativeError{Alg: s.desc.ID, Op: OpKeypair, Status: status}
	}
	return pk, sk, nil
}

// Sign signs message with secretKey. The signature buffer is allocated
// at the descriptor's upper bound and truncated to the length the native
// routine reports: FN-DSA signatures in particular are variable-length,
// and callers rely on the returned slice being exact.
func (s *Signer) Sign(message, secretKey []byte) ([]byte, error) {
	if len(secretKey) != s.desc.SecretKeySize {
		return nil, &SizeError{Field: "secret key", Want: s.desc.SecretKeySize, Got: len(secretKey)}
	}
	sig := make([]byte, s.desc.SignatureSize)
	status, n := s.fn.Sign(sig, message, secretKey)
	if status != 0 {
		return nil, &NativeError{Alg: s.desc.ID, Op: OpSign, Status: status}
	}
	if n < 0 || n > len(sig) {
		return nil, fmt.Errorf("%s reported signature length %d outside buffer of %d", s.desc.ID, n, len(sig))
	}
	return sig[:n], nil
}

// SignContext signs message with an explicit context string. The native
// boundary has no context parameter, so any non-empty context is refused
// with ErrContextNotSupported rather than silently dropped.
func (s *Signer) SignContext(message, secretKey, context []byte) ([]byte, error) {
	if len(context) > 0 {
		return nil, ErrContextNotSupported
	}
	return s.Sign(message, secretKey)
}

// Verify reports whether signature is valid for message under publicKey.
// The signature length is deliberately not checked against the
// descriptor: valid signatures are variable-length for some schemes.
// A failed verification returns (false, nil); an error return is reserved
// for malformed inputs.
func (s *Signer) Verify(signature, message, publicKey []byte) (bool, error) {
	if len(publicKey) != s.desc.PublicKeySize {
		return false, &SizeError{Field: "public key", Want: s.desc.PublicKeySize, Got: len(publicKey)}
	}
	return s.fn.Verify(signature, message, publicKey) == 0, nil
}

// VerifyContext verifies with an explicit context string, refusing
// non-empty contexts like SignContext.
func (s *Signer) VerifyContext(signature, message, publicKey, context []byte) (bool, error) {
	if len(context) > 0 {
		return false, ErrContextNotSupported
	}
	return s.Verify(signature, message, publicKey)
}
