// Package pqctest provides a pure-Go pqc.Binder backed by the
// cloudflare/circl reference implementations, so facades and validators
// can be exercised in tests without a native shared library. Algorithms
// without a circl reference fail to resolve, mirroring a library that
// does not export them.
package pqctest

import (
	"fmt"

	"github.com/remiblancher/pqbind/internal/pqc"
)

// Binder implements pqc.Binder over circl schemes.
type Binder struct{}

// Ensure Binder implements pqc.Binder.
var _ pqc.Binder = Binder{}

// ResolveKEM returns circl-backed callables for d, or an error if no
// reference implementation exists.
func (Binder) ResolveKEM(d pqc.Descriptor) (pqc.KEMFuncs, error) {
	scheme := pqc.ReferenceKEM(d.ID)
	if scheme == nil {
		return pqc.KEMFuncs{}, fmt.Errorf("pqctest: no reference implementation for %s", d.ID)
	}

	return pqc.KEMFuncs{
		Keypair: func(pk, sk []byte) int {
			pub, priv, err := scheme.GenerateKeyPair()
			if err != nil {
				return -1
			}
			pb, err := pub.MarshalBinary()
			if err != nil {
				return -1
			}
			sb, err := priv.MarshalBinary()
			if err != nil {
				return -1
			}
			copy(pk, pb)
			copy(sk, sb)
			return 0
		},
		Enc: func(ct, ss, pk []byte) int {
			pub, err := scheme.UnmarshalBinaryPublicKey(pk)
			if err != nil {
				return -1
			}
			c, s, err := scheme.Encapsulate(pub)
			if err != nil {
				return -1
			}
			copy(ct, c)
			copy(ss, s)
			return 0
		},
		Dec: func(ss, ct, sk []byte) int {
			priv, err := scheme.UnmarshalBinaryPrivateKey(sk)
			if err != nil {
				return -1
			}
			s, err := scheme.Decapsulate(priv, ct)
			if err != nil {
				return -1
			}
			copy(ss, s)
			return 0
		},
	}, nil
}

// ResolveSign returns circl-backed callables for d, or an error if no
// reference implementation exists.
func (Binder) ResolveSign(d pqc.Descriptor) (pqc.SignFuncs, error) {
	scheme := pqc.ReferenceSign(d.ID)
	if scheme == nil {
		return pqc.SignFuncs{}, fmt.Errorf("pqctest: no reference implementation for %s", d.ID)
	}

	return pqc.SignFuncs{
		Keypair: func(pk, sk []byte) int {
			pub, priv, err := scheme.GenerateKey()
			if err != nil {
				return -1
			}
			pb, err := pub.MarshalBinary()
			if err != nil {
				return -1
			}
			sb, err := priv.MarshalBinary()
			if err != nil {
				return -1
			}
			copy(pk, pb)
			copy(sk, sb)
			return 0
		},
		Sign: func(sig, msg, sk []byte) (int, int) {
			priv, err := scheme.UnmarshalBinaryPrivateKey(sk)
			if err != nil {
				return -1, 0
			}
			out := scheme.Sign(priv, msg, nil)
			copy(sig, out)
			return 0, len(out)
		},
		Verify: func(sig, msg, pk []byte) int {
			pub, err := scheme.UnmarshalBinaryPublicKey(pk)
			if err != nil {
				return -1
			}
			if scheme.Verify(pub, msg, sig, nil) {
				return 0
			}
			return -1
		},
	}, nil
}
