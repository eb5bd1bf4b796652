package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"guild-manager/internal/core/domain"
	"guild-manager/internal/core/services/checklist"

	"github.com/go-chi/chi/v5"
)

func parseCategoryParam(w http.ResponseWriter, r *http.Request) (domain.Category, bool) {
	cat, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return cat, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *Handlers) AddCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := parseCategoryParam(w, r)
	if !ok {
		return
	}
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.AddCategory(doc, cat)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"category": string(cat)})
}

func (h *Handlers) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := parseCategoryParam(w, r)
	if !ok {
		return
	}
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.RemoveCategory(doc, cat)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"category": string(cat)})
}

func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	cat, ok := parseCategoryParam(w, r)
	if !ok {
		return
	}
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.AddItem(doc, cat, req.Name)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

func (h *Handlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cat, ok := parseCategoryParam(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.RemoveItem(doc, cat, name)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (h *Handlers) RenameItem(w http.ResponseWriter, r *http.Request) {
	cat, ok := parseCategoryParam(w, r)
	if !ok {
		return
	}
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	oldName := chi.URLParam(r, "name")
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.RenameItem(doc, cat, oldName, req.Name)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

func (h *Handlers) AddSubItem(w http.ResponseWriter, r *http.Request) {
	cat, ok := parseCategoryParam(w, r)
	if !ok {
		return
	}
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	parent := chi.URLParam(r, "name")
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.AddSubItem(doc, cat, parent, req.Name)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

func (h *Handlers) RemoveSubItem(w http.ResponseWriter, r *http.Request) {
	cat, ok := parseCategoryParam(w, r)
	if !ok {
		return
	}
	parent := chi.URLParam(r, "name")
	sub := chi.URLParam(r, "sub")
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.RemoveSubItem(doc, cat, parent, sub)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": sub})
}

func (h *Handlers) RenameSubItem(w http.ResponseWriter, r *http.Request) {
	cat, ok := parseCategoryParam(w, r)
	if !ok {
		return
	}
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	parent := chi.URLParam(r, "name")
	oldSub := chi.URLParam(r, "sub")
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.RenameSubItem(doc, cat, parent, oldSub, req.Name)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

type checkRequest struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Checked  bool   `json:"checked"`
}

func (h *Handlers) SetCheck(w http.ResponseWriter, r *http.Request) {
	member := chi.URLParam(r, "name")
	var req checkRequest
	if !decodeBody(w, r, &req) {
		return
	}
	cat, err := domain.ParseCategory(req.Category)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Key == "" {
		respondError(w, http.StatusBadRequest, "key is required")
		return
	}
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.Toggle(doc, member, cat, req.Key, req.Checked)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"checked": req.Checked})
}

type timeZoneRequest struct {
	TimeZone string `json:"timeZone"`
}

func (h *Handlers) SetTimeZone(w http.ResponseWriter, r *http.Request) {
	member := chi.URLParam(r, "name")
	var req timeZoneRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := time.LoadLocation(req.TimeZone); err != nil {
		respondError(w, http.StatusBadRequest, "unknown time zone")
		return
	}
	if err := h.service.Mutate(func(doc *domain.GuildDocument) error {
		return checklist.SetTimeZone(doc, member, req.TimeZone)
	}); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"timeZone": req.TimeZone})
}
