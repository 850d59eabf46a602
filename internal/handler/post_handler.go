package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"linxblog/internal/apperror"
	"linxblog/internal/models"
)

const (
	defaultPage    = 1
	defaultPerPage = 10

	msgNumericExpected = "Validation failed (numeric string is expected)"
)

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperror.Validation(msgNumericExpected)
	}
	return id, nil
}

// pageParams reads page and perPage, defaulting absent values. Range checks
// are left to the service.
func pageParams(r *http.Request) (int, int, error) {
	query := r.URL.Query()

	page, err := intParam(query.Get("page"), defaultPage)
	if err != nil {
		return 0, 0, err
	}

	perPage, err := intParam(query.Get("perPage"), defaultPerPage)
	if err != nil {
		return 0, 0, err
	}

	return page, perPage, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation(msgNumericExpected)
	}
	return n, nil
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.PostInput
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.PostService.Create(r.Context(), caller.ID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	posts, err := h.PostService.List(r.Context(), page, perPage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	page, perPage, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	posts, err := h.PostService.ListForOwner(r.Context(), caller.ID, page, perPage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.PostService.GetByID(r.Context(), postID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	postID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.PostInput
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.PostService.Update(r.Context(), caller.ID, postID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	postID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.PostService.Remove(r.Context(), caller.ID, postID); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeSuccess(w, nil, http.StatusNoContent)
}
