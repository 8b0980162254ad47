package pqc_test

import (
	"github.com/remiblancher/pqbind/internal/pqc"
)

// fakeBinder returns scripted callables so facade behavior can be tested
// without circl or a native library.
type fakeBinder struct {
	kem  pqc.KEMFuncs
	sign pqc.SignFuncs

	kemErr  error
	signErr error
}

func (f *fakeBinder) ResolveKEM(_ pqc.Descriptor) (pqc.KEMFuncs, error) {
	return f.kem, f.kemErr
}

func (f *fakeBinder) ResolveSign(_ pqc.Descriptor) (pqc.SignFuncs, error) {
	return f.sign, f.signErr
}

// okKEMFuncs fills every output with the given byte and succeeds.
func okKEMFuncs(fill byte) pqc.KEMFuncs {
	set := func(b []byte) {
		for i := range b {
			b[i] = fill
		}
	}
	return pqc.KEMFuncs{
		Keypair: func(pk, sk []byte) int { set(pk); set(sk); return 0 },
		Enc:     func(ct, ss, pk []byte) int { set(ct); set(ss); return 0 },
		Dec:     func(ss, ct, sk []byte) int { set(ss); return 0 },
	}
}
