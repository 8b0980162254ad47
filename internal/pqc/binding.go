// Package pqc provides Go bindings to native PQClean implementations.
// This file implements the foreign binding: it loads the shared library
// once per process and resolves symbols into typed callables.
package pqc

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"
)

// KEMFuncs holds the resolved native entry points for one KEM variant.
// Each function returns the raw native status code (0 = success). Output
// buffers must be sized exactly per the descriptor; the binding writes
// into them in place.
type KEMFuncs struct {
	Keypair func(pk, sk []byte) int
	Enc     func(ct, ss, pk []byte) int
	Dec     func(ss, ct, sk []byte) int
}

// SignFuncs holds the resolved native entry points for one signature
// variant. Sign additionally reports the actual signature length written,
// which may be shorter than the buffer for variable-length schemes.
type SignFuncs struct {
	Keypair func(pk, sk []byte) int
	Sign    func(sig, msg, sk []byte) (status, sigLen int)
	Verify  func(sig, msg, pk []byte) int
}

// Binder resolves native entry points for an algorithm descriptor.
// The production implementation is *Binding; tests substitute pure-Go
// stubs (see pqctest).
type Binder interface {
	ResolveKEM(d Descriptor) (KEMFuncs, error)
	ResolveSign(d Descriptor) (SignFuncs, error)
}

// Binding loads a PQClean shared library and resolves its symbols. The
// library is opened at most once per Binding; symbol addresses are cached
// and immutable after population, so resolved callables are safe for
// unsynchronized concurrent use. A failed load is never retried: callers
// wanting another attempt must create a fresh Binding.
type Binding struct {
	path string

	mu      sync.Mutex
	handle  uintptr
	loaded  bool
	loadErr error
	symbols map[string]uintptr
}

// Ensure Binding implements Binder.
var _ Binder = (*Binding)(nil)

// NewBinding creates a binding for the shared library at path. The
// library is not opened until the first resolution.
func NewBinding(path string) *Binding {
	return &Binding{
		path:    path,
		symbols: make(map[string]uintptr),
	}
}

// Path returns the library path this binding was created with.
func (b *Binding) Path() string { return b.path }

// symbol resolves one symbol, loading the library first if needed.
func (b *Binding) symbol(name string) (uintptr, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loadErr != nil {
		return 0, b.loadErr
	}
	if !b.loaded {
		h, err := dlopen(b.path)
		if err != nil {
			b.loadErr = &LoadError{Path: b.path, Err: err}
			return 0, b.loadErr
		}
		b.handle = h
		b.loaded = true
	}

	if addr, ok := b.symbols[name]; ok {
		return addr, nil
	}
	addr, err := dlsym(b.handle, name)
	if err != nil {
		return 0, &SymbolError{Symbol: name, Err: err}
	}
	b.symbols[name] = addr
	return addr, nil
}

// resolve resolves the symbol for one algorithm operation.
func (b *Binding) resolve(alg AlgorithmID, op Operation) (uintptr, error) {
	name, err := SymbolName(alg, op)
	if err != nil {
		return 0, err
	}
	return b.symbol(name)
}

// ResolveKEM resolves all three KEM entry points for the descriptor.
// Resolution is eager: a missing symbol surfaces here, not at first use.
func (b *Binding) ResolveKEM(d Descriptor) (KEMFuncs, error) {
	if d.Type != TypeKEM {
		return KEMFuncs{}, fmt.Errorf("%s is not a KEM algorithm", d.ID)
	}

	keypair, err := b.resolve(d.ID, OpKeypair)
	if err != nil {
		return KEMFuncs{}, err
	}
	enc, err := b.resolve(d.ID, OpEncapsulate)
	if err != nil {
		return KEMFuncs{}, err
	}
	dec, err := b.resolve(d.ID, OpDecapsulate)
	if err != nil {
		return KEMFuncs{}, err
	}

	return KEMFuncs{
		Keypair: func(pk, sk []byte) int {
			status := call(keypair, bufPtr(pk), bufPtr(sk))
			runtime.KeepAlive(pk)
			runtime.KeepAlive(sk)
			return status
		},
		Enc: func(ct, ss, pk []byte) int {
			status := call(enc, bufPtr(ct), bufPtr(ss), bufPtr(pk))
			runtime.KeepAlive(ct)
			runtime.KeepAlive(ss)
			runtime.KeepAlive(pk)
			return status
		},
		Dec: func(ss, ct, sk []byte) int {
			status := call(dec, bufPtr(ss), bufPtr(ct), bufPtr(sk))
			runtime.KeepAlive(ss)
			runtime.KeepAlive(ct)
			runtime.KeepAlive(sk)
			return status
		},
	}, nil
}

// ResolveSign resolves all three signature entry points for the descriptor.
func (b *Binding) ResolveSign(d Descriptor) (SignFuncs, error) {
	if d.Type != TypeSignature {
		return SignFuncs{}, fmt.Errorf("%s is not a signature algorithm", d.ID)
	}

	keypair, err := b.resolve(d.ID, OpKeypair)
	if err != nil {
		return SignFuncs{}, err
	}
	sign, err := b.resolve(d.ID, OpSign)
	if err != nil {
		return SignFuncs{}, err
	}
	verify, err := b.resolve(d.ID, OpVerify)
	if err != nil {
		return SignFuncs{}, err
	}

	return SignFuncs{
		Keypair: func(pk, sk []byte) int {
			status := call(keypair, bufPtr(pk), bufPtr(sk))
			runtime.KeepAlive(pk)
			runtime.KeepAlive(sk)
			return status
		},
		Sign: func(sig, msg, sk []byte) (int, int) {
			// size_t *siglen out parameter.
			sigLen := uint64(len(sig))
			status := call(sign,
				bufPtr(sig),
				uintptr(unsafe.Pointer(&sigLen)),
				bufPtr(msg),
				uintptr(len(msg)),
				bufPtr(sk),
			)
			runtime.KeepAlive(sig)
			runtime.KeepAlive(msg)
			runtime.KeepAlive(sk)
			return status, int(sigLen)
		},
		Verify: func(sig, msg, pk []byte) int {
			status := call(verify,
				bufPtr(sig),
				uintptr(len(sig)),
				bufPtr(msg),
				uintptr(len(msg)),
				bufPtr(pk),
			)
			runtime.KeepAlive(sig)
			runtime.KeepAlive(msg)
			runtime.KeepAlive(pk)
			return status
		},
	}, nil
}

// bufPtr returns the address of the first byte of b, or 0 for an empty
// slice. Native routines receiving a zero length never dereference it.
func bufPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
