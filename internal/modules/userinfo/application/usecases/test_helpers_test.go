package usecases

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

const testGuildID = snowflake.ID(100)

// mockMatcher is a test double for ports.MemberMatcher.
type mockMatcher struct {
	matchID    snowflake.ID
	matchOK    bool
	lastQuery  string
	matchCalls int
}

func (m *mockMatcher) Match(
	snapshot *domain.GuildSnapshot,
	query string,
) (snowflake.ID, bool) {
	m.lastQuery = query
	m.matchCalls++
	return m.matchID, m.matchOK
}

// mockSearcher is a test double for ports.TrackSearcher.
type mockSearcher struct {
	results   []ports.TrackResult
	err       error
	lastQuery string
	calls     int
}

func (m *mockSearcher) SearchTrack(
	ctx context.Context,
	query string,
	limit, offset int,
) ([]ports.TrackResult, error) {
	m.lastQuery = query
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func testMember(id snowflake.ID, username string, roleIDs ...snowflake.ID) *domain.Member {
	return &domain.Member{
		ID:            id,
		Username:      username,
		Discriminator: "0001",
		RoleIDs:       roleIDs,
	}
}

func snapshotWith(
	roles []*domain.RoleInfo,
	members []*domain.Member,
	presences map[snowflake.ID]*domain.Presence,
) *domain.GuildSnapshot {
	return domain.NewGuildSnapshot(testGuildID, "Test Guild", roles, members, presences)
}

func everyoneRole() *domain.RoleInfo {
	return &domain.RoleInfo{ID: testGuildID, Name: "@everyone", Rank: 0}
}

func fixedTime(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 30, 0, 0, time.UTC)
}
