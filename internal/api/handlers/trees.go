package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecetopal/familytree-backend/internal/api/httpx"
	"github.com/ecetopal/familytree-backend/internal/models"
	"github.com/ecetopal/familytree-backend/internal/services"
)

type TreeHandler struct {
	Trees *services.TreeService
}

func NewTreeHandler(trees *services.TreeService) *TreeHandler { return &TreeHandler{Trees: trees} }

type treeReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *TreeHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req treeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	t, err := h.Trees.Create(r.Context(), p, req.Name, req.Description)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, t)
}

func (h *TreeHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	trees, err := h.Trees.List(r.Context(), p)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	if trees == nil {
		trees = []models.FamilyTree{}
	}
	httpx.WriteJSON(w, http.StatusOK, trees)
}

func (h *TreeHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	t, err := h.Trees.Get(r.Context(), p, id)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

func (h *TreeHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	var req treeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	t, err := h.Trees.Update(r.Context(), p, id, req.Name, req.Description)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

func (h *TreeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	if err := h.Trees.Delete(r.Context(), p, id); err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TreeHandler) ChangeLog(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	limit, offset := 50, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	logs, err := h.Trees.ChangeLog(r.Context(), p, id, limit, offset)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	if logs == nil {
		logs = []models.ChangeLog{}
	}
	httpx.WriteJSON(w, http.StatusOK, logs)
}
