package api

import (
	"net/http"
	"time"

	"github.com/canonkit/canond-go/internal/core/crypto"
	"github.com/canonkit/canond-go/internal/util"
)

func (h *handlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"name":         "canond",
		"version":      "0.1",
		"service_time": time.Now().UTC().Format(time.RFC3339),
		"capabilities": map[string]any{
			"canonical_json":    "RFC8785-JCS",
			"digest_encoding":   "hex-lowercase",
			"hash_algorithms":   crypto.Algorithms(),
			"signature_algo":    "ed25519",
			"max_nesting_depth": h.ser.MaxDepth,
		},
		"default_algorithm": h.cfg.DefaultAlgorithm,
	}
	util.WriteJSON(w, http.StatusOK, resp)
}
