// Package kat parses NIST Known-Answer-Test response files and validates
// native implementations against them.
// This file aggregates per-algorithm results into a report that renders
// as text, JSON, or CBOR.
package kat

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Report is the full outcome of one validation run.
type Report struct {
	Library     string    `json:"library"`
	KATDir      string    `json:"kat_dir"`
	GeneratedAt time.Time `json:"generated_at"`
	Results     []Result  `json:"results"`
}

// Totals sums counts across all results.
func (r *Report) Totals() (total, passed, failed int) {
	for _, res := range r.Results {
		total += res.Total
		passed += res.Passed
		failed += res.Failed
	}
	return total, passed, failed
}

// Failed reports whether any algorithm failed a vector or produced no
// usable vectors.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Failed > 0 || res.Err != "" {
			return true
		}
	}
	return false
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteCBOR writes the report as CBOR.
func (r *Report) WriteCBOR(w io.Writer) error {
	data, err := cbor.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteText writes a human-readable summary, one line per algorithm.
func (r *Report) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "library: %s\n", r.Library)
	fmt.Fprintf(w, "kat dir: %s\n", r.KATDir)
	for _, res := range r.Results {
		switch {
		case res.Err != "":
			fmt.Fprintf(w, "%-16s no usable vectors: %s\n", res.Algorithm, res.Err)
		default:
			driven := res.Passed + res.Failed
			fmt.Fprintf(w, "%-16s %d/%d passed (%d of %d vectors driven)\n",
				res.Algorithm, res.Passed, driven, driven, res.Total)
		}
		if res.CrossCheck != "" {
			fmt.Fprintf(w, "%-16s cross-check: %s\n", "", res.CrossCheck)
		}
	}
	total, passed, failed := r.Totals()
	fmt.Fprintf(w, "total vectors %d, passed %d, failed %d\n", total, passed, failed)
	return nil
}
