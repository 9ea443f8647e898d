package sweep

import (
	"encoding/json"
	"net/http"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

const parallelThreshold = 32

type Handler struct {
	// Workers bounds the pool used for large sweeps. Zero selects a
	// default of 4.
	Workers int
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var (
		res Result
		err error
	)
	if len(input.Items) >= parallelThreshold {
		workers := h.Workers
		if workers <= 0 {
			workers = 4
		}
		res, err = CalculateParallel(r.Context(), input, workers)
	} else {
		res, err = Calculate(input)
	}
	if err != nil {
		seal.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
