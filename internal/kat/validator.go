// Package kat parses NIST Known-Answer-Test response files and validates
// native implementations against them.
// This file drives a facade against parsed vectors. Validation is
// structural plus self-consistency: fresh keypairs are generated per
// case because the native boundary exposes no deterministic seeding, and
// artifact sizes are checked against the vector while shared secrets are
// checked for round-trip and vector equality.
package kat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/remiblancher/pqbind/internal/pqc"
)

// defaultMaxVectors caps how many vectors of a file are driven. KAT
// files carry 100 vectors; the first ten bound validation latency while
// still catching systematic faults.
const defaultMaxVectors = 10

// validationMessage is signed during signature validation. The .rsp
// format does not record the signed message, so a fixed one stands in.
var validationMessage = []byte("NIST KAT validation test message")

// wrongMessage must not verify under a signature over validationMessage.
var wrongMessage = []byte("Different message")

// CaseOutcome records one driven vector.
type CaseOutcome struct {
	Count  int    `json:"count"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Result aggregates validation of one algorithm. Total is the number of
// vectors in the file; only the capped prefix is driven, so
// Passed+Failed <= Total. A zero Total with Err set means no usable
// vectors (missing files or a parse failure), which is distinct from
// vectors that ran and failed.
type Result struct {
	Algorithm pqc.AlgorithmID `json:"algorithm"`
	Total     int             `json:"total"`
	Passed    int             `json:"passed"`
	Failed    int             `json:"failed"`

	Err        string `json:"error,omitempty"`
	CrossCheck string `json:"cross_check,omitempty"`

	RequestFile  string `json:"request_file,omitempty"`
	ResponseFile string `json:"response_file,omitempty"`
	RequestSHA3  string `json:"request_sha3,omitempty"`
	ResponseSHA3 string `json:"response_sha3,omitempty"`

	Cases []CaseOutcome `json:"cases,omitempty"`
}

// Validator drives KAT validation for one native library.
type Validator struct {
	// KATDir is the root of the KAT vector tree.
	KATDir string

	// MaxVectors caps vectors driven per file; 0 means the default of 10.
	MaxVectors int

	// CrossCheck additionally runs the circl reference cross-check for
	// algorithms that have one.
	CrossCheck bool

	// Log receives a line per case outcome; nil discards.
	Log io.Writer
}

func (v *Validator) cap() int {
	if v.MaxVectors > 0 {
		return v.MaxVectors
	}
	return defaultMaxVectors
}

func (v *Validator) logf(format string, args ...any) {
	if v.Log != nil {
		fmt.Fprintf(v.Log, format+"\n", args...)
	}
}

// load locates and parses the vectors for alg, filling in file metadata.
// A nil return with r.Err set means no usable vectors.
func (v *Validator) load(alg pqc.AlgorithmID, r *Result) []TestCase {
	reqPath, rspPath, err := Locate(v.KATDir, alg)
	if err != nil {
		r.Err = err.Error()
		return nil
	}
	r.RequestFile = reqPath
	r.ResponseFile = rspPath
	if fp, err := Fingerprint(reqPath); err == nil {
		r.RequestSHA3 = fp
	}
	if fp, err := Fingerprint(rspPath); err == nil {
		r.ResponseSHA3 = fp
	}

	data, err := os.ReadFile(rspPath)
	if err != nil {
		r.Err = err.Error()
		return nil
	}
	cases, err := Parse(data)
	if err != nil {
		r.Err = err.Error()
		return nil
	}
	if len(cases) == 0 {
		r.Err = "no usable vectors in " + rspPath
		return nil
	}
	r.Total = len(cases)
	return cases
}

// record tallies one case outcome and logs it.
func (v *Validator) record(r *Result, count int, detail string) {
	passed := detail == ""
	if passed {
		r.Passed++
		v.logf("  ok  %s count=%d", r.Algorithm, count)
	} else {
		r.Failed++
		v.logf("  FAIL %s count=%d: %s", r.Algorithm, count, detail)
	}
	r.Cases = append(r.Cases, CaseOutcome{Count: count, Passed: passed, Detail: detail})
}

// ValidateKEM validates a bound KEM facade against its KAT vectors.
// Every error while driving one vector becomes a per-case failure; one
// bad vector never aborts the rest.
func (v *Validator) ValidateKEM(k *pqc.KEM) Result {
	r := Result{Algorithm: k.Algorithm()}

	if v.CrossCheck {
		r.CrossCheck = crossCheckString(pqc.CrossCheckKEM(k))
	}

	cases := v.load(k.Algorithm(), &r)
	if cases == nil {
		return r
	}
	v.logf("validating %s: %d vectors, driving %d", r.Algorithm, r.Total, min(v.cap(), r.Total))

	for _, tc := range cases[:min(v.cap(), len(cases))] {
		v.record(&r, tc.Count, v.runKEMCase(k, tc))
	}
	return r
}

// runKEMCase drives one vector and returns a failure detail, or "".
func (v *Validator) runKEMCase(k *pqc.KEM, tc TestCase) string {
	pk, sk, err := k.Keypair()
	if err != nil {
		return fmt.Sprintf("keypair: %v", err)
	}
	if len(pk) != len(tc.PK) || len(sk) != len(tc.SK) {
		return fmt.Sprintf("keypair size mismatch: pk %d/%d, sk %d/%d", len(pk), len(tc.PK), len(sk), len(tc.SK))
	}

	ct, encSS, err := k.Encapsulate(pk)
	if err != nil {
		return fmt.Sprintf("encapsulate: %v", err)
	}
	if len(ct) != len(tc.CT) || len(encSS) != len(tc.SS) {
		return fmt.Sprintf("encapsulation size mismatch: ct %d/%d, ss %d/%d", len(ct), len(tc.CT), len(encSS), len(tc.SS))
	}

	decSS, err := k.Decapsulate(ct, sk)
	if err != nil {
		return fmt.Sprintf("decapsulate: %v", err)
	}
	if len(decSS) != len(tc.SS) {
		return fmt.Sprintf("decapsulation size mismatch: ss %d/%d", len(decSS), len(tc.SS))
	}

	if !bytes.Equal(encSS, decSS) {
		return "decapsulated secret disagrees with encapsulated secret"
	}
	if !bytes.Equal(encSS, tc.SS) {
		return "shared secret disagrees with recorded vector"
	}
	return ""
}

// ValidateSigner validates a bound signature facade against its KAT
// vectors. The .rsp format carries no message, so each case signs a
// fixed message, requires verification to succeed, and requires the same
// signature to fail against a different message.
func (v *Validator) ValidateSigner(s *pqc.Signer) Result {
	r := Result{Algorithm: s.Algorithm()}

	if v.CrossCheck {
		r.CrossCheck = crossCheckString(pqc.CrossCheckSign(s))
	}

	cases := v.load(s.Algorithm(), &r)
	if cases == nil {
		return r
	}
	v.logf("validating %s: %d vectors, driving %d", r.Algorithm, r.Total, min(v.cap(), r.Total))

	for _, tc := range cases[:min(v.cap(), len(cases))] {
		v.record(&r, tc.Count, v.runSignCase(s, tc))
	}
	return r
}

// runSignCase drives one vector and returns a failure detail, or "".
func (v *Validator) runSignCase(s *pqc.Signer, tc TestCase) string {
	pk, sk, err := s.Keypair()
	if err != nil {
		return fmt.Sprintf("keypair: %v", err)
	}
	if len(pk) != len(tc.PK) || len(sk) != len(tc.SK) {
		return fmt.Sprintf("keypair size mismatch: pk %d/%d, sk %d/%d", len(pk), len(tc.PK), len(sk), len(tc.SK))
	}

	sig, err := s.Sign(validationMessage, sk)
	if err != nil {
		return fmt.Sprintf("sign: %v", err)
	}
	if len(sig) == 0 {
		return "empty signature"
	}

	valid, err := s.Verify(sig, validationMessage, pk)
	if err != nil {
		return fmt.Sprintf("verify: %v", err)
	}
	if !valid {
		return "signature rejected for the signed message"
	}

	valid, err = s.Verify(sig, wrongMessage, pk)
	if err != nil {
		return fmt.Sprintf("verify wrong message: %v", err)
	}
	if valid {
		return "signature accepted for a different message"
	}
	return ""
}

// crossCheckString folds a cross-check error into the report field.
func crossCheckString(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, pqc.ErrNoReference):
		return "skipped: " + err.Error()
	default:
		return "failed: " + err.Error()
	}
}
