package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonkit/canond-go/internal/core/canonjson"
	"github.com/canonkit/canond-go/internal/core/crypto"
	"github.com/canonkit/canond-go/internal/util"
)

// PostCanonicalize reads a JSON document and responds with its canonical
// byte form, verbatim.
func (h *handlers) PostCanonicalize(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.readDocument(w, r)
	if !ok {
		return
	}
	out, err := h.ser.Canonicalize(doc)
	if err != nil {
		util.WriteError(w, http.StatusUnprocessableEntity, errorCode(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// PostDigest reads a JSON document and responds with the digest of its
// canonical form. The algorithm query parameter selects the hash; the
// configured default applies when absent.
func (h *handlers) PostDigest(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.readDocument(w, r)
	if !ok {
		return
	}
	algorithm := util.QueryOr(r, "algorithm", h.cfg.DefaultAlgorithm)
	digest, err := h.ser.Digest(doc, algorithm)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, crypto.ErrUnknownAlgorithm) {
			status = http.StatusBadRequest
		}
		util.WriteError(w, status, errorCode(err), err.Error())
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]any{
		"algorithm": algorithm,
		"digest":    digest,
	})
}

// PostEqual reads {"a":...,"b":...} and responds with whether the two
// documents have identical canonical forms. An error canonicalizing either
// side is reported, never folded into false.
func (h *handlers) PostEqual(w http.ResponseWriter, r *http.Request) {
	body, err := util.ReadBody(r, h.cfg.MaxBodyBytes)
	if err != nil {
		writeBodyError(w, err)
		return
	}
	var pair struct {
		A json.RawMessage `json:"a"`
		B json.RawMessage `json:"b"`
	}
	if err := json.Unmarshal(body, &pair); err != nil {
		util.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid JSON: "+err.Error())
		return
	}
	if len(pair.A) == 0 || len(pair.B) == 0 {
		util.WriteError(w, http.StatusBadRequest, "invalid_request", "both a and b are required")
		return
	}
	va, err := canonjson.Parse(pair.A)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, "invalid_request", "a: "+err.Error())
		return
	}
	vb, err := canonjson.Parse(pair.B)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, "invalid_request", "b: "+err.Error())
		return
	}
	equal, err := h.ser.Equal(va, vb)
	if err != nil {
		util.WriteError(w, http.StatusUnprocessableEntity, errorCode(err), err.Error())
		return
	}
	util.WriteJSON(w, http.StatusOK, map[string]any{"equal": equal})
}

// readDocument reads and parses the request body into a value tree,
// writing the error response itself when something is wrong.
func (h *handlers) readDocument(w http.ResponseWriter, r *http.Request) (canonjson.Value, bool) {
	body, err := util.ReadBody(r, h.cfg.MaxBodyBytes)
	if err != nil {
		writeBodyError(w, err)
		return canonjson.Value{}, false
	}
	doc, err := canonjson.Parse(body)
	if err != nil {
		util.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid JSON: "+err.Error())
		return canonjson.Value{}, false
	}
	return doc, true
}

func writeBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, util.ErrBodyTooLarge) {
		util.WriteError(w, http.StatusRequestEntityTooLarge, "invalid_request", "body too large")
		return
	}
	util.WriteError(w, http.StatusBadRequest, "invalid_request", "failed to read body")
}

// errorCode maps engine errors onto stable API error codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, canonjson.ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(err, canonjson.ErrDuplicateKey):
		return "duplicate_key"
	case errors.Is(err, canonjson.ErrDepthExceeded):
		return "depth_exceeded"
	case errors.Is(err, canonjson.ErrUnsupportedType):
		return "unsupported_type"
	case errors.Is(err, crypto.ErrUnknownAlgorithm):
		return "unknown_algorithm"
	}
	return "invalid_request"
}
