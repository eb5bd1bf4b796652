package roster

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"guild-manager/internal/adapters/metrics"
	"guild-manager/internal/config"
	"guild-manager/internal/core/domain"
	"guild-manager/internal/core/ports"
)

type Dependencies struct {
	Config   *config.Config
	Source   ports.RosterSource
	Store    ports.DocumentStore
	Notifier ports.NotificationService
}

// Service owns the authoritative in-memory document. Reconciliation cycles
// are serialized; mutations clone the document, transform the clone and
// swap it in, so readers never see partial state. Every state-affecting
// change schedules a debounced write.
type Service struct {
	config   *config.Config
	source   ports.RosterSource
	store    ports.DocumentStore
	notifier ports.NotificationService
	enricher *Enricher
	clock    func() time.Time

	refreshMu sync.Mutex

	mu               sync.Mutex
	doc              *domain.GuildDocument
	applicationsOpen bool
	persistTimer     *time.Timer
}

func NewService(deps Dependencies) *Service {
	return &Service{
		config:   deps.Config,
		source:   deps.Source,
		store:    deps.Store,
		notifier: deps.Notifier,
		enricher: NewEnricher(deps.Source),
		clock:    time.Now,
		doc: &domain.GuildDocument{
			Name:         deps.Config.GuildName,
			CheckedItems: domain.CheckedItems{},
		},
	}
}

// Load reads the persisted document. A missing document is a first run,
// not an error.
func (s *Service) Load(ctx context.Context) error {
	doc, err := s.store.ReadDocument(ctx, s.config.GuildName)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		slog.Info("No persisted document, starting fresh", "guild", s.config.GuildName)
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	slog.Info("Loaded persisted document", "guild", s.config.GuildName, "members", len(doc.Members))
	return nil
}

// Start refreshes immediately and then on every tick until ctx is done.
func (s *Service) Start(ctx context.Context) {
	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	slog.Info("Roster service started", "guild", s.config.GuildName, "interval", s.config.RefreshInterval)

	if err := s.Refresh(ctx); err != nil {
		slog.Error("Initial refresh failed", "error", err)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				slog.Error("Scheduled refresh failed", "error", err)
			}
		}
	}
}

// Refresh runs one reconciliation cycle. Cycles never interleave: a second
// caller blocks until the first cycle has fully applied or failed.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	start := s.clock()

	snapshot, err := s.source.FetchGuildRoster(ctx, s.config.GuildName)
	if err != nil {
		metrics.ReconcileRuns.WithLabelValues("failure").Inc()
		return err
	}

	details := s.enricher.Enrich(ctx, snapshot)

	// mu stays held from the prior-read through the swap. Reconcile is a
	// pure in-memory merge, and releasing the lock around it would let a
	// concurrent Mutate apply to the prior document and be overwritten.
	s.mu.Lock()
	result := Reconcile(ReconcileInput{
		Prior:           s.doc,
		Snapshot:        snapshot,
		Details:         details,
		Now:             s.clock(),
		DefaultTimeZone: s.config.DefaultTimeZone,
	})
	s.doc = result.Doc
	s.applicationsOpen = snapshot.ApplicationsOpen
	s.schedulePersistLocked()
	s.mu.Unlock()

	for _, event := range result.NewEvents {
		if err := s.notifier.SendChangeNotification(event); err != nil {
			slog.Warn("Failed to notify change", "name", event.Name, "type", event.Type, "error", err)
		}
	}

	metrics.ReconcileRuns.WithLabelValues("success").Inc()
	metrics.ReconcileDuration.Observe(s.clock().Sub(start).Seconds())
	slog.Info("Reconciliation finished", "guild", s.config.GuildName,
		"members", len(result.Doc.Members), "new_events", len(result.NewEvents))
	return nil
}

// Document returns the current document. It is treated as immutable:
// mutations swap in a fresh clone, so holding the pointer is safe.
func (s *Service) Document() *domain.GuildDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

func (s *Service) Stats() domain.GuildStats {
	s.mu.Lock()
	doc := s.doc
	open := s.applicationsOpen
	s.mu.Unlock()
	return BuildStats(doc, open, s.clock())
}

// Mutate clones the document, applies fn to the clone and swaps it in when
// fn succeeds. A failed fn leaves the live document untouched. Success
// schedules a debounced persist.
func (s *Service) Mutate(fn func(*domain.GuildDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}
	next.LastUpdated = s.clock()
	s.doc = next
	s.schedulePersistLocked()
	return nil
}

// schedulePersistLocked coalesces writes: a pending timer is discarded and
// replaced, so the store sees one write per idle window. Callers hold mu.
func (s *Service) schedulePersistLocked() {
	if s.persistTimer != nil {
		s.persistTimer.Stop()
	}
	s.persistTimer = time.AfterFunc(s.config.PersistDebounce, s.persist)
}

func (s *Service) persist() {
	s.mu.Lock()
	doc := s.doc
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.store.WriteDocument(ctx, doc); err != nil {
		// Not retried here; the next mutation's debounced write carries the
		// full state again.
		metrics.PersistWrites.WithLabelValues("failure").Inc()
		slog.Error("Failed to persist document", "guild", doc.Name, "error", err)
		return
	}

	metrics.PersistWrites.WithLabelValues("success").Inc()
	slog.Info("Persisted document", "guild", doc.Name, "members", len(doc.Members))
}

// Flush cancels any pending debounced write and persists immediately.
// Used on shutdown.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.persistTimer != nil {
		s.persistTimer.Stop()
		s.persistTimer = nil
	}
	doc := s.doc
	s.mu.Unlock()

	return s.store.WriteDocument(ctx, doc)
}
