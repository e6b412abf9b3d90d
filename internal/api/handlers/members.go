package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecetopal/familytree-backend/internal/api/httpx"
	"github.com/ecetopal/familytree-backend/internal/api/validate"
	"github.com/ecetopal/familytree-backend/internal/models"
	"github.com/ecetopal/familytree-backend/internal/services"
)

type MemberHandler struct {
	Members *services.MemberService
}

func NewMemberHandler(members *services.MemberService) *MemberHandler {
	return &MemberHandler{Members: members}
}

type memberReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD, optional
	Bio       string `json:"bio"`
}

func (req memberReq) model() (models.FamilyMember, error) {
	m := models.FamilyMember{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Bio:       req.Bio,
	}
	if req.BirthDate != "" {
		d, err := validate.Date(req.BirthDate)
		if err != nil {
			return models.FamilyMember{}, err
		}
		m.BirthDate = &d
	}
	return m, nil
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	treeID, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	var req memberReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	m, err := req.model()
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "birth_date: "+err.Error(), nil)
		return
	}
	m.TreeID = treeID
	created, err := h.Members.Create(r.Context(), p, m)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *MemberHandler) ListByTree(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	treeID, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	members, err := h.Members.ListByTree(r.Context(), p, treeID)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	if members == nil {
		members = []models.FamilyMember{}
	}
	httpx.WriteJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}
	m, err := h.Members.Get(r.Context(), p, id)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}
	var req memberReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	in, err := req.model()
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "birth_date: "+err.Error(), nil)
		return
	}
	m, err := h.Members.Update(r.Context(), p, id, in)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}
	if err := h.Members.Delete(r.Context(), p, id); err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
