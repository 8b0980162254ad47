// Package api exposes algorithm metadata and KAT validation over a small
// REST API using Chi.
// This file carries the handlers and response types.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/remiblancher/pqbind/internal/kat"
	"github.com/remiblancher/pqbind/internal/pqc"
)

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// AlgorithmResponse describes one algorithm variant.
type AlgorithmResponse struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	PublicKeySize    int    `json:"public_key_size"`
	SecretKeySize    int    `json:"secret_key_size"`
	CiphertextSize   int    `json:"ciphertext_size,omitempty"`
	SharedSecretSize int    `json:"shared_secret_size,omitempty"`
	SignatureSize    int    `json:"signature_size,omitempty"`
	HasKAT           bool   `json:"has_kat"`
}

// APIError is the error response body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

func (s *Server) algorithms(w http.ResponseWriter, _ *http.Request) {
	algs := pqc.AllAlgorithms()
	sort.Slice(algs, func(i, j int) bool { return algs[i] < algs[j] })

	resp := make([]AlgorithmResponse, 0, len(algs))
	for _, alg := range algs {
		resp = append(resp, algorithmResponse(alg))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) algorithm(w http.ResponseWriter, r *http.Request) {
	alg, err := pqc.ParseAlgorithm(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown_algorithm", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, algorithmResponse(alg))
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	alg, err := pqc.ParseAlgorithm(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "unknown_algorithm", err.Error())
		return
	}

	v := &kat.Validator{
		KATDir:     s.cfg.KATDir,
		MaxVectors: s.cfg.MaxVectors,
		CrossCheck: s.cfg.CrossCheck,
		Log:        io.Discard,
	}

	var result kat.Result
	switch alg.Type() {
	case pqc.TypeKEM:
		k, err := pqc.NewKEM(s.binder, alg)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "binding_failed", err.Error())
			return
		}
		result = v.ValidateKEM(k)
	case pqc.TypeSignature:
		sg, err := pqc.NewSigner(s.binder, alg)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "binding_failed", err.Error())
			return
		}
		result = v.ValidateSigner(sg)
	}
	respondJSON(w, http.StatusOK, result)
}

func algorithmResponse(alg pqc.AlgorithmID) AlgorithmResponse {
	d, _ := alg.Descriptor()
	hasKAT := false
	for _, a := range kat.SupportedAlgorithms() {
		if a == alg {
			hasKAT = true
			break
		}
	}
	return AlgorithmResponse{
		ID:               string(d.ID),
		Type:             d.Type.String(),
		Description:      d.Description,
		PublicKeySize:    d.PublicKeySize,
		SecretKeySize:    d.SecretKeySize,
		CiphertextSize:   d.CiphertextSize,
		SharedSecretSize: d.SharedSecretSize,
		SignatureSize:    d.SignatureSize,
		HasKAT:           hasKAT,
	}
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIError{Code: code, Message: message})
}
