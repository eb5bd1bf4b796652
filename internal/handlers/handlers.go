package handlers

import (
	"context"
	"net/http"
	"time"

	"guild-manager/internal/core/domain"
	"guild-manager/internal/core/ports"
)

// RosterService is the slice of the roster service the HTTP layer needs.
type RosterService interface {
	Document() *domain.GuildDocument
	Stats() domain.GuildStats
	Refresh(ctx context.Context) error
	Mutate(fn func(*domain.GuildDocument) error) error
}

type Handlers struct {
	service RosterService
	store   ports.DocumentStore
}

func NewHandlers(service RosterService, store ports.DocumentStore) *Handlers {
	return &Handlers{service: service, store: store}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type rosterResponse struct {
	Guild *domain.GuildDocument `json:"guild"`
	Stats domain.GuildStats     `json:"stats"`
}

func (h *Handlers) GetRoster(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rosterResponse{
		Guild: h.service.Document(),
		Stats: h.service.Stats(),
	})
}

func (h *Handlers) GetChanges(w http.ResponseWriter, r *http.Request) {
	changes := h.service.Document().RecentChanges
	if changes == nil {
		changes = []domain.ChangeEvent{}
	}
	respondJSON(w, http.StatusOK, map[string][]domain.ChangeEvent{"recentChanges": changes})
}

// Refresh triggers a reconciliation cycle on demand. It blocks until the
// cycle finishes so the caller reads its own write on the next GET.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]time.Time{"lastUpdated": h.service.Document().LastUpdated})
}
