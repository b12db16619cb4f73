package domain

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Member is a read-only view of a user's membership in a guild.
// The guild snapshot owns the canonical record; consumers receive a
// handle and must not mutate it.
type Member struct {
	ID            snowflake.ID
	Username      string
	Discriminator string
	GlobalName    string
	Nickname      string
	AvatarURL     string
	Bot           bool
	JoinedAt      time.Time // zero when the platform never recorded a join date
	RoleIDs       []snowflake.ID
}

// Tag returns the user's tag. Accounts migrated to unique usernames
// carry a zero discriminator and are tagged by username alone.
func (m *Member) Tag() string {
	if m.Discriminator == "" || m.Discriminator == "0" {
		return m.Username
	}
	return m.Username + "#" + m.Discriminator
}

// DisplayName returns the effective display name for the member.
// Priority: guild nickname > global display name > username.
func (m *Member) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}
	if m.GlobalName != "" {
		return m.GlobalName
	}
	return m.Username
}

// CreatedAt returns the account creation time encoded in the member's snowflake ID.
func (m *Member) CreatedAt() time.Time {
	return m.ID.Time()
}

// HasJoinDate reports whether the guild recorded when the member joined.
func (m *Member) HasJoinDate() bool {
	return !m.JoinedAt.IsZero()
}
