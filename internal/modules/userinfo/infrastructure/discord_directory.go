package infrastructure

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

// Ensure StateDirectory implements ports.GuildDirectory.
var _ ports.GuildDirectory = (*StateDirectory)(nil)

// StateDirectory implements ports.GuildDirectory over discordgo's local
// state cache. The snapshot is fully copied out under the state's read
// lock before the pipeline runs, so no state lock is ever held across
// the enrichment call.
type StateDirectory struct {
	session *discordgo.Session
}

// NewStateDirectory creates a new StateDirectory.
func NewStateDirectory(session *discordgo.Session) *StateDirectory {
	return &StateDirectory{session: session}
}

// Snapshot builds a read-only view of the guild's cached state.
func (d *StateDirectory) Snapshot(guildID snowflake.ID) (*domain.GuildSnapshot, error) {
	guild, err := d.session.State.Guild(guildID.String())
	if err != nil {
		return nil, fmt.Errorf("guild %s not in state cache: %w", guildID, err)
	}

	// State.Guild returns the live cached guild, which gateway event
	// handlers mutate under the state's write lock. Hold the read lock
	// while copying; it is released when Snapshot returns, before any
	// network call happens.
	d.session.State.RLock()
	defer d.session.State.RUnlock()

	roles := make([]*domain.RoleInfo, 0, len(guild.Roles))
	for _, role := range guild.Roles {
		roleID, err := snowflake.Parse(role.ID)
		if err != nil {
			continue
		}
		roles = append(roles, &domain.RoleInfo{
			ID:    roleID,
			Name:  role.Name,
			Rank:  role.Position,
			Color: role.Color,
		})
	}

	members := make([]*domain.Member, 0, len(guild.Members))
	for _, member := range guild.Members {
		if member.User == nil {
			continue
		}
		userID, err := snowflake.Parse(member.User.ID)
		if err != nil {
			continue
		}

		roleIDs := make([]snowflake.ID, 0, len(member.Roles))
		for _, raw := range member.Roles {
			if roleID, err := snowflake.Parse(raw); err == nil {
				roleIDs = append(roleIDs, roleID)
			}
		}

		members = append(members, &domain.Member{
			ID:            userID,
			Username:      member.User.Username,
			Discriminator: member.User.Discriminator,
			GlobalName:    member.User.GlobalName,
			Nickname:      member.Nick,
			AvatarURL:     member.User.AvatarURL(""),
			Bot:           member.User.Bot,
			JoinedAt:      member.JoinedAt,
			RoleIDs:       roleIDs,
		})
	}

	presences := make(map[snowflake.ID]*domain.Presence, len(guild.Presences))
	for _, presence := range guild.Presences {
		if presence.User == nil {
			continue
		}
		userID, err := snowflake.Parse(presence.User.ID)
		if err != nil {
			continue
		}
		presences[userID] = convertPresence(presence)
	}

	return domain.NewGuildSnapshot(guildID, guild.Name, roles, members, presences), nil
}

func convertPresence(presence *discordgo.Presence) *domain.Presence {
	activities := make([]domain.Activity, 0, len(presence.Activities))
	for _, activity := range presence.Activities {
		if activity == nil {
			continue
		}
		activities = append(activities, domain.Activity{
			Kind:      convertActivityKind(activity.Type),
			Name:      activity.Name,
			Details:   activity.Details,
			State:     activity.State,
			LargeText: activity.Assets.LargeText,
			SmallText: activity.Assets.SmallText,
		})
	}

	return &domain.Presence{
		Status:     convertStatus(presence.Status),
		Activities: activities,
	}
}

func convertStatus(status discordgo.Status) domain.Status {
	switch status {
	case discordgo.StatusOnline:
		return domain.StatusOnline
	case discordgo.StatusIdle:
		return domain.StatusIdle
	case discordgo.StatusDoNotDisturb:
		return domain.StatusDoNotDisturb
	case discordgo.StatusInvisible:
		return domain.StatusInvisible
	default:
		return domain.StatusOffline
	}
}

func convertActivityKind(kind discordgo.ActivityType) domain.ActivityKind {
	switch kind {
	case discordgo.ActivityTypeGame:
		return domain.ActivityPlaying
	case discordgo.ActivityTypeStreaming:
		return domain.ActivityStreaming
	case discordgo.ActivityTypeListening:
		return domain.ActivityListening
	case discordgo.ActivityTypeWatching:
		return domain.ActivityWatching
	case discordgo.ActivityTypeCustom:
		return domain.ActivityCustom
	default:
		return domain.ActivityOther
	}
}
