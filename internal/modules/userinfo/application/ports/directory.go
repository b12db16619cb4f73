package ports

import (
	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

// GuildDirectory supplies read-only guild snapshots from the platform's
// local cache. Lookups are non-blocking; no snapshot method performs
// network I/O.
type GuildDirectory interface {
	// Snapshot returns the current view of the guild's members, roles,
	// and presences.
	Snapshot(guildID snowflake.ID) (*domain.GuildSnapshot, error)
}

// MemberMatcher resolves a free-text name against a guild's member
// directory. A miss is reported via the boolean, never as an error.
type MemberMatcher interface {
	Match(snapshot *domain.GuildSnapshot, query string) (snowflake.ID, bool)
}
