package usecases

import (
	"log/slog"

	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

// ResolveInput contains the raw target specification of a user info request.
type ResolveInput struct {
	Snapshot *domain.GuildSnapshot
	// MentionIDs are the mentioned users, in message order. Only the
	// first mention is used; the rest are ignored.
	MentionIDs []snowflake.ID
	FreeText   string
	InvokerID  snowflake.ID
}

// ResolverService resolves a target specification to a single guild member.
type ResolverService struct {
	matcher ports.MemberMatcher
}

// NewResolverService creates a new ResolverService.
func NewResolverService(matcher ports.MemberMatcher) *ResolverService {
	return &ResolverService{matcher: matcher}
}

// Resolve returns the targeted member. Precedence: first mention, then
// the invoker when no free text is given, then free-text name matching.
// A free-text miss returns (nil, nil): the invocation ends silently
// with no reply, which is deliberate.
func (s *ResolverService) Resolve(input ResolveInput) (*domain.Member, error) {
	if input.Snapshot == nil {
		return nil, ErrNotInGuild
	}

	if len(input.MentionIDs) > 0 {
		member, ok := input.Snapshot.Member(input.MentionIDs[0])
		if !ok {
			return nil, ErrMemberNotFound
		}
		return member, nil
	}

	if input.FreeText == "" {
		member, ok := input.Snapshot.Member(input.InvokerID)
		if !ok {
			return nil, ErrMemberNotFound
		}
		return member, nil
	}

	id, ok := s.matcher.Match(input.Snapshot, input.FreeText)
	if !ok {
		slog.Debug("no member matched free-text target", "query", input.FreeText)
		return nil, nil
	}

	member, ok := input.Snapshot.Member(id)
	if !ok {
		return nil, ErrMemberNotFound
	}
	return member, nil
}
