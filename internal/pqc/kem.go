// Package pqc provides Go bindings to native PQClean implementations.
// This file implements the KEM facade over the resolved native entry
// points.
package pqc

import "fmt"

// KEM wraps the native KEM entry points for one algorithm variant.
// Construction resolves all three operations eagerly; a KEM value that
// exists is always fully bound. Input lengths are checked against the
// descriptor before any native call.
type KEM struct {
	desc Descriptor
	fn   KEMFuncs
}

// NewKEM binds the KEM facade for alg using the given binder.
func NewKEM(b Binder, alg AlgorithmID) (*KEM, error) {
	desc, err := alg.Descriptor()
	if err != nil {
		return nil, err
	}
	if desc.Type != TypeKEM {
		return nil, fmt.Errorf("%s is not a KEM algorithm", alg)
	}
	fn, err := b.ResolveKEM(desc)
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", alg, err)
	}
	return &KEM{desc: desc, fn: fn}, nil
}

// Algorithm returns the algorithm this facade is bound to.
func (k *KEM) Algorithm() AlgorithmID { return k.desc.ID }

// Descriptor returns the size descriptor.
func (k *KEM) Descriptor() Descriptor { return k.desc }

// Keypair generates a fresh keypair. The returned slices have exactly
// the descriptor's public and secret key sizes.
func (k *KEM) Keypair() (publicKey, secretKey []byte, err error) {
	pk := make([]byte, k.desc.PublicKeySize)
	sk := make([]byte, k.desc.SecretKeySize)
	if status := k.fn.Keypair(pk, sk); status != 0 {
		return nil, nil, &NativeError{Alg: k.desc.ID, Op: OpKeypair, Status: status}
	}
	return pk, sk, nil
}

// Encapsulate produces a ciphertext and shared secret for publicKey.
func (k *KEM) Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(publicKey) != k.desc.PublicKeySize {
		return nil, nil, &SizeError{Field: "public key", Want: k.desc.PublicKeySize, Got: len(publicKey)}
	}
	ct := make([]byte, k.desc.CiphertextSize)
	ss := make([]byte, k.desc.SharedSecretSize)
	if status := k.fn.Enc(ct, ss, publicKey); status != 0 {
		return nil, nil, &NativeError{Alg: k.desc.ID, Op: OpEncapsulate, Status: status}
	}
	return ct, ss, nil
}

// Decapsulate recovers the shared secret from a ciphertext. Implicit
// rejection is a property of the underlying scheme: for a malformed
// ciphertext the native routine may report success and return a
// pseudorandom substitute secret, and the facade passes both the status
// and the bytes through unchanged.
func (k *KEM) Decapsulate(ciphertext, secretKey []byte) (sharedSecret []byte, err error) {
	if len(ciphertext) != k.desc.CiphertextSize {
		return nil, &SizeError{Field: "ciphertext", Want: k.desc.CiphertextSize, Got: len(ciphertext)}
	}
	if len(secretKey) != k.desc.SecretKeySize {
		return nil, &SizeError{Field: "secret key", Want: k.desc.SecretKeySize, Got: len(secretKey)}
	}
	ss := make([]byte, k.desc.SharedSecretSize)
	if status := k.fn.Dec(ss, ciphertext, secretKey); status != 0 {
		return nil, &NativeError{Alg: k.desc.ID, Op: OpDecapsulate, Status: status}
	}
	return ss, nil
}
