// Package cases lets an authenticated engineer save a calculated seal case
// under a name and list saved cases later. The result stored is the one
// computed at save time; recomputing from the stored input must reproduce it.
package cases

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/xxy2000213-boop/huanre/internal/auth"
	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
	"github.com/xxy2000213-boop/huanre/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type saveRequest struct {
	Name  string     `json:"name"`
	Input seal.Input `json:"input"`
}

type saveResponse struct {
	ID     int         `json:"id"`
	Result seal.Result `json:"result"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return
	}

	res, err := seal.Calculate(req.Input)
	if err != nil {
		seal.WriteError(w, err)
		return
	}

	id, err := h.Repo.SaveCase(r.Context(), userID, repo.Case{
		Name:   req.Name,
		Input:  req.Input,
		Result: res,
	})
	if err != nil {
		log.WithError(err).Error("save case")
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saveResponse{ID: id, Result: res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cases, err := h.Repo.ListCases(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("list cases")
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	if cases == nil {
		cases = []repo.Case{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cases)
}
