package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecetopal/familytree-backend/internal/api/httpx"
	"github.com/ecetopal/familytree-backend/internal/api/validate"
	"github.com/ecetopal/familytree-backend/internal/models"
	"github.com/ecetopal/familytree-backend/internal/services"
)

// RecordHandler serves the life-event endpoints: births, passings,
// achievements.
type RecordHandler struct {
	Records *services.RecordService
}

func NewRecordHandler(records *services.RecordService) *RecordHandler {
	return &RecordHandler{Records: records}
}

func (h *RecordHandler) CreateBirth(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	treeID, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	var req struct {
		ChildID   int64  `json:"child_id"`
		MotherID  *int64 `json:"mother_id"`
		FatherID  *int64 `json:"father_id"`
		BirthDate string `json:"birth_date"`
		Place     string `json:"place"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	date, err := validate.Date(req.BirthDate)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "birth_date: "+err.Error(), nil)
		return
	}
	b, err := h.Records.RecordBirth(r.Context(), p, models.Birth{
		TreeID:    treeID,
		ChildID:   req.ChildID,
		MotherID:  req.MotherID,
		FatherID:  req.FatherID,
		BirthDate: date,
		Place:     req.Place,
	})
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, b)
}

func (h *RecordHandler) ListBirths(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	treeID, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	bs, err := h.Records.ListBirths(r.Context(), p, treeID)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	if bs == nil {
		bs = []models.Birth{}
	}
	httpx.WriteJSON(w, http.StatusOK, bs)
}

func (h *RecordHandler) CreatePassing(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}
	var req struct {
		PassingDate string `json:"passing_date"`
		Place       string `json:"place"`
		Cause       string `json:"cause"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	date, err := validate.Date(req.PassingDate)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "passing_date: "+err.Error(), nil)
		return
	}
	created, err := h.Records.RecordPassing(r.Context(), p, models.Passing{
		MemberID:    memberID,
		PassingDate: date,
		Place:       req.Place,
		Cause:       req.Cause,
	})
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

type achievementReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AchievedOn  string `json:"achieved_on"` // YYYY-MM-DD, optional
}

func (req achievementReq) model() (models.Achievement, error) {
	a := models.Achievement{Title: req.Title, Description: req.Description}
	if req.AchievedOn != "" {
		d, err := validate.Date(req.AchievedOn)
		if err != nil {
			return models.Achievement{}, err
		}
		a.AchievedOn = &d
	}
	return a, nil
}

func (h *RecordHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}
	var req achievementReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	a, err := req.model()
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "achieved_on: "+err.Error(), nil)
		return
	}
	a.MemberID = memberID
	created, err := h.Records.AddAchievement(r.Context(), p, a)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *RecordHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}
	as, err := h.Records.ListAchievements(r.Context(), p, memberID)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	if as == nil {
		as = []models.Achievement{}
	}
	httpx.WriteJSON(w, http.StatusOK, as)
}

func (h *RecordHandler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "achievementID")
	if !ok {
		return
	}
	var req achievementReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	in, err := req.model()
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "achieved_on: "+err.Error(), nil)
		return
	}
	a, err := h.Records.UpdateAchievement(r.Context(), p, id, in)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, a)
}

func (h *RecordHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "achievementID")
	if !ok {
		return
	}
	if err := h.Records.DeleteAchievement(r.Context(), p, id); err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
