package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type branchHandler struct {
	branches service.BranchService
}

func newBranchHandler(branches service.BranchService) *branchHandler {
	return &branchHandler{branches: branches}
}

func (h *branchHandler) list(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branches.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

func (h *branchHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	branch, err := h.branches.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branch)
}

func (h *branchHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.branches.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
