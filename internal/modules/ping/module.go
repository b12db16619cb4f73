package ping

import (
	"github.com/bwmarrin/discordgo"

	"github.com/elliebot/ellie/internal/bot"
	"github.com/elliebot/ellie/internal/modules/ping/presentation"
)

func init() {
	bot.Register(&Module{})
}

// Module provides the /ping latency command.
type Module struct {
	pingHandler *presentation.PingHandler
}

// Name returns the module name.
func (m *Module) Name() string {
	return "ping"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Checks the bot's gateway latency",
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"ping": m.pingHandler.Handle,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *Module) EventHandlers() []bot.EventHandler {
	return nil
}

// Init initializes the module.
func (m *Module) Init(deps bot.ModuleDependencies) error {
	m.pingHandler = presentation.NewPingHandler()
	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	return nil
}
