//go:build darwin || linux

// Package pqc provides Go bindings to native PQClean implementations.
// This file implements dynamic loading via dlopen/dlsym on platforms
// supported by purego.
package pqc

import "github.com/ebitengine/purego"

// dlopen opens the shared library at path.
func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// dlsym resolves a symbol address in a loaded library.
func dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

// call invokes a native function with the PQClean C ABI and returns its
// int status. The result is sign-extended from the C int register.
func call(fn uintptr, args ...uintptr) int {
	r1, _, _ := purego.SyscallN(fn, args...)
	return int(int32(r1))
}
