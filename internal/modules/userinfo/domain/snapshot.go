package domain

import (
	"errors"

	"github.com/disgoorg/snowflake/v2"
)

// ErrHierarchyUnavailable is returned when role hierarchy information
// cannot be resolved from the snapshot, e.g. when a member carries a
// role ID the role table does not know about.
var ErrHierarchyUnavailable = errors.New("role hierarchy information is unavailable")

// RoleInfo describes a guild role.
type RoleInfo struct {
	ID    snowflake.ID
	Name  string
	Rank  int // position in the guild's role hierarchy, higher outranks lower
	Color int // 0 means the role has no color set
}

// HasColor reports whether the role supplies a display color.
func (r *RoleInfo) HasColor() bool {
	return r.Color != 0
}

// GuildSnapshot is an immutable view of a guild's cached state: member
// list, role table, and presence table. It is built once per command
// invocation and grants read access only.
type GuildSnapshot struct {
	id          snowflake.ID
	name        string
	roles       map[snowflake.ID]*RoleInfo
	members     map[snowflake.ID]*Member
	memberOrder []*Member
	presences   map[snowflake.ID]*Presence
}

// NewGuildSnapshot builds a snapshot from the given state.
// The presences map is keyed by user ID.
func NewGuildSnapshot(
	id snowflake.ID,
	name string,
	roles []*RoleInfo,
	members []*Member,
	presences map[snowflake.ID]*Presence,
) *GuildSnapshot {
	roleTable := make(map[snowflake.ID]*RoleInfo, len(roles))
	for _, role := range roles {
		roleTable[role.ID] = role
	}

	memberTable := make(map[snowflake.ID]*Member, len(members))
	for _, member := range members {
		memberTable[member.ID] = member
	}

	if presences == nil {
		presences = make(map[snowflake.ID]*Presence)
	}

	return &GuildSnapshot{
		id:          id,
		name:        name,
		roles:       roleTable,
		members:     memberTable,
		memberOrder: members,
		presences:   presences,
	}
}

// ID returns the guild ID.
func (g *GuildSnapshot) ID() snowflake.ID {
	return g.id
}

// Name returns the guild name.
func (g *GuildSnapshot) Name() string {
	return g.name
}

// Member looks up a member by user ID.
func (g *GuildSnapshot) Member(id snowflake.ID) (*Member, bool) {
	m, ok := g.members[id]
	return m, ok
}

// Members returns all members in the order the backing store
// enumerated them.
func (g *GuildSnapshot) Members() []*Member {
	result := make([]*Member, len(g.memberOrder))
	copy(result, g.memberOrder)
	return result
}

// Presence returns the member's presence, or nil when the platform has
// not reported one.
func (g *GuildSnapshot) Presence(userID snowflake.ID) *Presence {
	return g.presences[userID]
}

// Role looks up a role by ID.
func (g *GuildSnapshot) Role(id snowflake.ID) (*RoleInfo, bool) {
	r, ok := g.roles[id]
	return r, ok
}

// RolesOf returns the member's assigned roles in the order the backing
// store enumerates them. Role IDs missing from the role table are
// skipped.
func (g *GuildSnapshot) RolesOf(m *Member) []*RoleInfo {
	result := make([]*RoleInfo, 0, len(m.RoleIDs))
	for _, id := range m.RoleIDs {
		if role, ok := g.roles[id]; ok {
			result = append(result, role)
		}
	}
	return result
}

// HighestRole returns the member's highest-ranked role. Ties are broken
// by whichever role the store enumerates first. A member with no
// assigned roles resolves to the guild's everyone role. Returns
// ErrHierarchyUnavailable when the role table cannot back the lookup.
func (g *GuildSnapshot) HighestRole(m *Member) (*RoleInfo, error) {
	if len(m.RoleIDs) == 0 {
		everyone, ok := g.roles[g.id]
		if !ok {
			return nil, ErrHierarchyUnavailable
		}
		return everyone, nil
	}

	var highest *RoleInfo
	for _, id := range m.RoleIDs {
		role, ok := g.roles[id]
		if !ok {
			return nil, ErrHierarchyUnavailable
		}
		if highest == nil || role.Rank > highest.Rank {
			highest = role
		}
	}
	return highest, nil
}

// DisplayColor returns the color of the member's highest-ranked role
// that has a non-default color. The second return value is false when
// no assigned role supplies a color.
func (g *GuildSnapshot) DisplayColor(m *Member) (int, bool) {
	var best *RoleInfo
	for _, role := range g.RolesOf(m) {
		if !role.HasColor() {
			continue
		}
		if best == nil || role.Rank > best.Rank {
			best = role
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Color, true
}
