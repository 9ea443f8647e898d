package report

import (
	"encoding/json"
	"net/http"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	// Validate before committing to PDF headers so input errors still reach
	// the client as JSON.
	if err := input.Seal.Validate(); err != nil {
		seal.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"seal-report.pdf\"")
	if err := Build(w, input); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
