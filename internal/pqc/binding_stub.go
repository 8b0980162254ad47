//go:build !darwin && !linux

// Package pqc provides Go bindings to native PQClean implementations.
// This file provides stubs for platforms without dlopen support; the
// pure-Go facade tests still run there, only the native binding does not.
package pqc

import "fmt"

var errUnsupportedOS = fmt.Errorf("native library loading is only supported on linux and darwin")

func dlopen(_ string) (uintptr, error) {
	return 0, errUnsupportedOS
}

func dlsym(_ uintptr, _ string) (uintptr, error) {
	return 0, errUnsupportedOS
}

func call(_ uintptr, _ ...uintptr) int {
	return -1
}
