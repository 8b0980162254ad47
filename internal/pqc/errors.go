// Package pqc provides Go bindings to native PQClean implementations.
// This file defines the error kinds surfaced by the binding and facades.
// Callers distinguish them with errors.As / errors.Is: a missing library
// (LoadError) is not a missing symbol (SymbolError), and neither is a
// native routine reporting failure (NativeError).
package pqc

import (
	"errors"
	"fmt"
)

// ErrContextNotSupported is returned when a non-empty context string is
// passed to a sign or verify operation. The PQClean boundary has no
// context parameter; silently dropping one would change the cryptographic
// meaning of the signature, so the request is refused instead.
var ErrContextNotSupported = errors.New("context strings are not supported by the native sign API")

// LoadError reports a native library that could not be opened.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load native library %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SymbolError reports a symbol absent from a loaded library.
type SymbolError struct {
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("cannot resolve symbol %s: %v", e.Symbol, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// SizeError reports an input buffer whose length disagrees with the
// algorithm descriptor. It is raised before any native call is made.
type SizeError struct {
	Field string
	Want  int
	Got   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s must be %d bytes, got %d", e.Field, e.Want, e.Got)
}

// NativeError reports a native routine returning a non-zero status.
type NativeError struct {
	Alg    AlgorithmID
	Op     Operation
	Status int
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("%s %s failed with native status %d", e.Alg, e.Op, e.Status)
}
