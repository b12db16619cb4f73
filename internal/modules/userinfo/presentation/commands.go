package presentation

import "github.com/bwmarrin/discordgo"

// Commands returns all slash commands for the userinfo module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "user",
			Description: "Shows various information about a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to look up (defaults to you)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Name or tag to look up instead of a mention",
					Required:    false,
				},
			},
		},
	}
}
