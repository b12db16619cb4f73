package infrastructure

import (
	"strings"

	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

// Ensure DirectoryMatcher implements ports.MemberMatcher.
var _ ports.MemberMatcher = (*DirectoryMatcher)(nil)

// DirectoryMatcher implements ports.MemberMatcher by case-insensitive
// name and tag matching over the guild snapshot. Exact matches win over
// prefix matches; within a pass the first member enumerated wins.
type DirectoryMatcher struct{}

// NewDirectoryMatcher creates a new DirectoryMatcher.
func NewDirectoryMatcher() *DirectoryMatcher {
	return &DirectoryMatcher{}
}

// Match resolves a free-text query to a member ID. A miss is reported
// via the boolean, never as an error.
func (m *DirectoryMatcher) Match(
	snapshot *domain.GuildSnapshot,
	query string,
) (snowflake.ID, bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return 0, false
	}

	members := snapshot.Members()

	for _, member := range members {
		for _, candidate := range matchNames(member) {
			if candidate == needle {
				return member.ID, true
			}
		}
	}

	for _, member := range members {
		for _, candidate := range matchNames(member) {
			if strings.HasPrefix(candidate, needle) {
				return member.ID, true
			}
		}
	}

	return 0, false
}

// matchNames returns the lowercase name forms a member can be found by.
func matchNames(member *domain.Member) []string {
	names := make([]string, 0, 4)
	names = append(names, strings.ToLower(member.Username))
	names = append(names, strings.ToLower(member.Tag()))
	if member.Nickname != "" {
		names = append(names, strings.ToLower(member.Nickname))
	}
	if member.GlobalName != "" {
		names = append(names, strings.ToLower(member.GlobalName))
	}
	return names
}
