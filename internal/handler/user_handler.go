package handlers

import (
	"net/http"
)

// GetCurrentUser returns the profile of the token holder.
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.FindByID(r.Context(), caller.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}
