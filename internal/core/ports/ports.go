package ports

import (
	"context"

	"guild-manager/internal/core/domain"
)

// RosterSource is the external system reporting guild membership and
// per-character detail.
type RosterSource interface {
	FetchGuildRoster(ctx context.Context, guildName string) (*domain.GuildSnapshot, error)
	FetchCharacter(ctx context.Context, name string) (*domain.CharacterDetail, error)
	FetchCharacterDetails(ctx context.Context, names []string) (chan *domain.CharacterDetail, error)
}

// DocumentStore persists one document per guild. Writes replace whole
// top-level fields; there is no element-wise merge and no version check.
type DocumentStore interface {
	ReadDocument(ctx context.Context, guildName string) (*domain.GuildDocument, error)
	WriteDocument(ctx context.Context, doc *domain.GuildDocument) error
	Ping(ctx context.Context) error
	Close()
}

// NotificationService announces derived membership changes.
type NotificationService interface {
	SendChangeNotification(change domain.ChangeEvent) error
}
