package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"guild-manager/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuildDocumentStore struct {
	pool *pgxpool.Pool
}

func NewGuildDocumentStore(ctx context.Context, connString string) (*GuildDocumentStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &GuildDocumentStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return store, nil
}

func (s *GuildDocumentStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS guild_documents (
			guild_name     TEXT PRIMARY KEY,
			world          TEXT NOT NULL DEFAULT '',
			members        JSONB NOT NULL DEFAULT '[]',
			checked_items  JSONB NOT NULL DEFAULT '{}',
			recent_changes JSONB NOT NULL DEFAULT '[]',
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *GuildDocumentStore) Close() {
	s.pool.Close()
}

func (s *GuildDocumentStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// ReadDocument loads the full document for a guild, or ErrDocumentNotFound.
func (s *GuildDocumentStore) ReadDocument(ctx context.Context, guildName string) (*domain.GuildDocument, error) {
	var (
		doc        domain.GuildDocument
		membersRaw []byte
		checkedRaw []byte
		changesRaw []byte
	)

	row := s.pool.QueryRow(ctx, `
		SELECT guild_name, world, members, checked_items, recent_changes, updated_at
		FROM guild_documents WHERE guild_name = $1`, guildName)

	err := row.Scan(&doc.Name, &doc.World, &membersRaw, &checkedRaw, &changesRaw, &doc.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	if err := json.Unmarshal(membersRaw, &doc.Members); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	if err := json.Unmarshal(checkedRaw, &doc.CheckedItems); err != nil {
		return nil, fmt.Errorf("decode checked items: %w", err)
	}
	if err := json.Unmarshal(changesRaw, &doc.RecentChanges); err != nil {
		return nil, fmt.Errorf("decode recent changes: %w", err)
	}

	return &doc, nil
}

// WriteDocument upserts the document. Each top-level field is replaced
// wholesale; the last writer wins. There is no version check.
func (s *GuildDocumentStore) WriteDocument(ctx context.Context, doc *domain.GuildDocument) error {
	membersRaw, err := json.Marshal(doc.Members)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	checkedRaw, err := json.Marshal(doc.CheckedItems)
	if err != nil {
		return fmt.Errorf("encode checked items: %w", err)
	}
	changesRaw, err := json.Marshal(doc.RecentChanges)
	if err != nil {
		return fmt.Errorf("encode recent changes: %w", err)
	}

	updatedAt := doc.LastUpdated
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO guild_documents (guild_name, world, members, checked_items, recent_changes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (guild_name) DO UPDATE SET
			world = EXCLUDED.world,
			members = EXCLUDED.members,
			checked_items = EXCLUDED.checked_items,
			recent_changes = EXCLUDED.recent_changes,
			updated_at = EXCLUDED.updated_at`,
		doc.Name, doc.World, membersRaw, checkedRaw, changesRaw, updatedAt)
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}
