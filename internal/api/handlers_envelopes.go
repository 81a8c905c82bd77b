package api

import (
	"encoding/json"
	"net/http"

	"github.com/canonkit/canond-go/internal/core/envelope"
	"github.com/canonkit/canond-go/internal/util"
)

// PostEnvelope validates and verifies a signed envelope, responding with
// the envelope and the digest of its payload's canonical form.
func (h *handlers) PostEnvelope(w http.ResponseWriter, r *http.Request) {
	body, err := util.ReadBody(r, h.cfg.MaxBodyBytes)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	var env envelope.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		util.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid JSON: "+err.Error())
		return
	}

	if err := env.ValidateBasic(); err != nil {
		util.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := env.Verify(); err != nil {
		util.WriteError(w, http.StatusBadRequest, "invalid_signature", err.Error())
		return
	}

	digest, err := env.PayloadDigest(h.cfg.DefaultAlgorithm)
	if err != nil {
		util.WriteError(w, http.StatusUnprocessableEntity, errorCode(err), err.Error())
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]any{
		"envelope":         env,
		"digest_algorithm": h.cfg.DefaultAlgorithm,
		"payload_digest":   digest,
	})
}
