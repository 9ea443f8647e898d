package seal

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct{}

type errorResponse struct {
	Error string  `json:"error"`
	Field string  `json:"field,omitempty"`
	Value float64 `json:"value,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// WriteError renders a calculation error as JSON. Validation failures carry
// the offending field so the form can highlight it.
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	var inv *InvalidInputError
	if errors.As(err, &inv) {
		json.NewEncoder(w).Encode(errorResponse{Error: "invalid input", Field: inv.Field, Value: inv.Value})
		return
	}
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
