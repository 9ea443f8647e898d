package summary

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

// Handler serves the calculation together with an optional AI assessment.
// A nil or failing Summarizer degrades to an empty summary; the computed
// result is always returned.
type Handler struct {
	Summarizer Summarizer
}

type response struct {
	Result   seal.Result `json:"result"`
	Summary  string      `json:"summary,omitempty"`
	Degraded bool        `json:"degraded,omitempty"`
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var input seal.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := seal.Calculate(input)
	if err != nil {
		seal.WriteError(w, err)
		return
	}

	resp := response{Result: res}
	if h.Summarizer == nil {
		resp.Degraded = true
	} else if text, err := h.Summarizer.Summarize(r.Context(), input, res); err != nil {
		log.WithError(err).Warn("summary degraded")
		resp.Degraded = true
	} else {
		resp.Summary = text
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
