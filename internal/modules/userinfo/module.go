package userinfo

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/elliebot/ellie/internal/bot"
	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
	"github.com/elliebot/ellie/internal/modules/userinfo/application/usecases"
	"github.com/elliebot/ellie/internal/modules/userinfo/infrastructure"
	"github.com/elliebot/ellie/internal/modules/userinfo/presentation"
)

func init() {
	bot.Register(&Module{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*Module)(nil)

// Module provides the /user command.
type Module struct {
	config      *Config
	userHandler *presentation.UserHandler
}

// Name returns the module name.
func (m *Module) Name() string {
	return "userinfo"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"user": m.userHandler.Handle,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *Module) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *Module) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module. Missing Spotify credentials disable
// music enrichment; the command still works with generic phrases.
func (m *Module) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		m.config = &Config{}
	}

	var searcher ports.TrackSearcher
	if m.config.HasSpotifyCredentials() {
		spotifySearcher, err := infrastructure.NewSpotifySearcher(
			context.Background(),
			m.config.SpotifyClientID,
			m.config.SpotifyClientSecret,
		)
		if err != nil {
			return err
		}
		searcher = spotifySearcher
	} else {
		slog.Warn("userinfo module initialized without Spotify credentials, music enrichment disabled")
	}

	profile := usecases.NewProfileService(
		usecases.NewResolverService(infrastructure.NewDirectoryMatcher()),
		usecases.NewPresenceService(searcher),
	)

	var directory ports.GuildDirectory
	if deps.Session != nil {
		directory = infrastructure.NewStateDirectory(deps.Session)
	}
	m.userHandler = presentation.NewUserHandler(directory, profile)

	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	return nil
}
