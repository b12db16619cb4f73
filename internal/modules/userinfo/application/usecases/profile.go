package usecases

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

// timestampLayout is the fixed human-readable pattern for account and
// join dates, e.g. "Saturday, March 14, 2020 @ 3:09 pm".
const timestampLayout = "Monday, January _2, 2006 @ 3:04 pm"

// Fallback texts for static member fields.
const (
	noNicknameText = "No nickname has been set."
	noJoinDateText = "Unavailable"
)

// BuildProfileInput contains everything needed to build a user profile reply.
type BuildProfileInput struct {
	Snapshot   *domain.GuildSnapshot
	MentionIDs []snowflake.ID
	FreeText   string
	InvokerID  snowflake.ID
}

// Profile is the assembled reply payload for a user info request.
type Profile struct {
	AuthorName    string
	AuthorIconURL string
	ThumbnailURL  string
	Color         int
	Body          string
}

// ProfileService runs the full user info pipeline: target resolution,
// presence rendering with enrichment, role resolution, and assembly.
type ProfileService struct {
	resolver *ResolverService
	presence *PresenceService
}

// NewProfileService creates a new ProfileService.
func NewProfileService(resolver *ResolverService, presence *PresenceService) *ProfileService {
	return &ProfileService{
		resolver: resolver,
		presence: presence,
	}
}

// BuildProfile assembles the profile for the targeted member. A
// free-text resolution miss returns (nil, nil); the caller must send no
// reply in that case.
func (s *ProfileService) BuildProfile(
	ctx context.Context,
	input BuildProfileInput,
) (*Profile, error) {
	member, err := s.resolver.Resolve(ResolveInput{
		Snapshot:   input.Snapshot,
		MentionIDs: input.MentionIDs,
		FreeText:   input.FreeText,
		InvokerID:  input.InvokerID,
	})
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}

	presence := s.presence.Render(ctx, member.Username, input.Snapshot.Presence(member.ID))
	roles := ResolveRoles(member, input.Snapshot)

	accountType := "User"
	if member.Bot {
		accountType = "Bot"
	}

	created := member.CreatedAt().UTC().Format(timestampLayout)

	joined := noJoinDateText
	if member.HasJoinDate() {
		joined = member.JoinedAt.UTC().Format(timestampLayout)
	}

	nickname := member.Nickname
	if nickname == "" {
		nickname = noNicknameText
	}

	body := fmt.Sprintf(
		"%s%s**__User Information__**:\n"+
			"**Type**: %s\n"+
			"**Tag**: %s\n"+
			"**ID**: %s\n"+
			"**Creation Date**: %s\n\n"+
			"**__Guild-related Information__**:\n"+
			"**Join Date**: %s\n"+
			"**Nickname**: %s\n"+
			"**Display Color**: %s\n"+
			"**Main Role**: %s\n"+
			"**Roles (%d)**: %s",
		presence.StatusPhrase, presence.ActivitiesPhrase,
		accountType, member.Tag(), member.ID, created,
		joined, nickname, roles.ColorHex, roles.HighestRole,
		roles.RoleCount, roles.RoleNames,
	)

	return &Profile{
		AuthorName:    member.DisplayName(),
		AuthorIconURL: member.AvatarURL,
		ThumbnailURL:  presence.ThumbnailURL,
		Color:         roles.Color,
		Body:          body,
	}, nil
}
