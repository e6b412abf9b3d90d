package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecetopal/familytree-backend/internal/api/httpx"
	"github.com/ecetopal/familytree-backend/internal/api/validate"
	"github.com/ecetopal/familytree-backend/internal/models"
	"github.com/ecetopal/familytree-backend/internal/services"
)

type MarriageHandler struct {
	Marriages *services.MarriageService
}

func NewMarriageHandler(marriages *services.MarriageService) *MarriageHandler {
	return &MarriageHandler{Marriages: marriages}
}

func (h *MarriageHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	treeID, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	var req struct {
		PartnerOneID int64  `json:"partner_one_id"`
		PartnerTwoID int64  `json:"partner_two_id"`
		MarriageDate string `json:"marriage_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	date, err := validate.Date(req.MarriageDate)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "marriage_date: "+err.Error(), nil)
		return
	}
	m, err := h.Marriages.Record(r.Context(), p, models.Marriage{
		TreeID:       treeID,
		PartnerOneID: req.PartnerOneID,
		PartnerTwoID: req.PartnerTwoID,
		MarriageDate: date,
	})
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, m)
}

func (h *MarriageHandler) ListByTree(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	treeID, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	ms, err := h.Marriages.ListByTree(r.Context(), p, treeID)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	if ms == nil {
		ms = []models.Marriage{}
	}
	httpx.WriteJSON(w, http.StatusOK, ms)
}

// Divorce records a divorce on an existing marriage.
func (h *MarriageHandler) Divorce(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "marriageID")
	if !ok {
		return
	}
	var req struct {
		DivorceDate string `json:"divorce_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	date, err := validate.Date(req.DivorceDate)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "divorce_date: "+err.Error(), nil)
		return
	}
	m, err := h.Marriages.Divorce(r.Context(), p, id, date)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}
