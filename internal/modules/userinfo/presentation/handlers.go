package presentation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/bot"
	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
	"github.com/elliebot/ellie/internal/modules/userinfo/application/usecases"
)

// Embed colors.
const colorError = 0xE74C3C

// UserHandler handles the /user command.
type UserHandler struct {
	directory ports.GuildDirectory
	profile   *usecases.ProfileService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(directory ports.GuildDirectory, profile *usecases.ProfileService) *UserHandler {
	return &UserHandler{
		directory: directory,
		profile:   profile,
	}
}

// Handle runs the user info pipeline and replies with the assembled
// embed. A free-text lookup miss sends no reply at all; this is the
// documented behavior, not an error.
func (h *UserHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return respondError(r, "This command can only be used in a guild.")
	}

	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild.")
	}

	invokerID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user.")
	}

	if h.directory == nil {
		return respondError(r, "Unable to retrieve guild information.")
	}

	snapshot, err := h.directory.Snapshot(guildID)
	if err != nil {
		slog.Error("failed to snapshot guild state", "guild_id", guildID, "error", err)
		return respondError(r, "Unable to retrieve guild information.")
	}

	var mentionIDs []snowflake.ID
	var freeText string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "user":
			if id, err := snowflake.Parse(opt.UserValue(nil).ID); err == nil {
				mentionIDs = append(mentionIDs, id)
			}
		case "name":
			freeText = opt.StringValue()
		}
	}

	profile, err := h.profile.BuildProfile(context.Background(), usecases.BuildProfileInput{
		Snapshot:   snapshot,
		MentionIDs: mentionIDs,
		FreeText:   freeText,
		InvokerID:  invokerID,
	})
	if err != nil {
		if errors.Is(err, usecases.ErrMemberNotFound) {
			return respondError(r, "Could not find member.")
		}
		if errors.Is(err, usecases.ErrNotInGuild) {
			return respondError(r, "This command can only be used in a guild.")
		}
		return err
	}
	if profile == nil {
		// Free-text lookup miss: terminate silently with no reply.
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    profile.AuthorName,
			IconURL: profile.AuthorIconURL,
		},
		Description: profile.Body,
		Color:       profile.Color,
	}
	if profile.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: profile.ThumbnailURL}
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func respondError(r bot.Responder, message string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Error",
					Description: message,
					Color:       colorError,
				},
			},
		},
	})
}
