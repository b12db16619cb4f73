package presentation

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/bot"
	"github.com/elliebot/ellie/internal/modules/userinfo/application/usecases"
	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
	"github.com/elliebot/ellie/internal/modules/userinfo/infrastructure"
)

// fakeDirectory is a test double for ports.GuildDirectory.
type fakeDirectory struct {
	snapshot *domain.GuildSnapshot
	err      error
}

func (f *fakeDirectory) Snapshot(guildID snowflake.ID) (*domain.GuildSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func testHandler(directory *fakeDirectory) *UserHandler {
	profile := usecases.NewProfileService(
		usecases.NewResolverService(infrastructure.NewDirectoryMatcher()),
		usecases.NewPresenceService(nil),
	)
	return NewUserHandler(directory, profile)
}

func guildInteraction(options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "100",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "1"},
			},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    "user",
				Options: options,
			},
		},
	}
}

func testGuildSnapshot() *domain.GuildSnapshot {
	members := []*domain.Member{
		{ID: 1, Username: "invoker", Discriminator: "0001"},
		{ID: 2, Username: "target", Discriminator: "0002"},
	}
	roles := []*domain.RoleInfo{
		{ID: 100, Name: "@everyone", Rank: 0},
	}
	return domain.NewGuildSnapshot(100, "Test Guild", roles, members, nil)
}

func TestUserHandler_OutsideGuild(t *testing.T) {
	handler := testHandler(&fakeDirectory{})
	responder := &bot.MockResponder{}

	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "user"},
		},
	}

	if err := handler.Handle(nil, i, responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	embed := requireErrorEmbed(t, responder)
	if embed.Description != "This command can only be used in a guild." {
		t.Errorf("unexpected error description %q", embed.Description)
	}
}

func TestUserHandler_GuildUnavailable(t *testing.T) {
	handler := testHandler(&fakeDirectory{err: errors.New("not cached")})
	responder := &bot.MockResponder{}

	if err := handler.Handle(nil, guildInteraction(), responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	embed := requireErrorEmbed(t, responder)
	if embed.Description != "Unable to retrieve guild information." {
		t.Errorf("unexpected error description %q", embed.Description)
	}
}

func TestUserHandler_SelfLookup(t *testing.T) {
	handler := testHandler(&fakeDirectory{snapshot: testGuildSnapshot()})
	responder := &bot.MockResponder{}

	if err := handler.Handle(nil, guildInteraction(), responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	embed := requireEmbed(t, responder)
	if embed.Author == nil || embed.Author.Name != "invoker" {
		t.Errorf("expected author %q, got %+v", "invoker", embed.Author)
	}
	if !strings.Contains(embed.Description, "**Tag**: invoker#0001") {
		t.Errorf("expected body to contain the invoker tag, got %q", embed.Description)
	}
	if embed.Thumbnail != nil {
		t.Errorf("expected no thumbnail, got %+v", embed.Thumbnail)
	}
}

func TestUserHandler_UserOptionTargetsMember(t *testing.T) {
	handler := testHandler(&fakeDirectory{snapshot: testGuildSnapshot()})
	responder := &bot.MockResponder{}

	option := &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "user",
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: "2",
	}

	if err := handler.Handle(nil, guildInteraction(option), responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	embed := requireEmbed(t, responder)
	if embed.Author == nil || embed.Author.Name != "target" {
		t.Errorf("expected author %q, got %+v", "target", embed.Author)
	}
}

func TestUserHandler_FreeTextLookup(t *testing.T) {
	handler := testHandler(&fakeDirectory{snapshot: testGuildSnapshot()})
	responder := &bot.MockResponder{}

	option := &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "name",
		Type:  discordgo.ApplicationCommandOptionString,
		Value: "target",
	}

	if err := handler.Handle(nil, guildInteraction(option), responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	embed := requireEmbed(t, responder)
	if embed.Author == nil || embed.Author.Name != "target" {
		t.Errorf("expected author %q, got %+v", "target", embed.Author)
	}
}

func TestUserHandler_FreeTextMissIsSilent(t *testing.T) {
	handler := testHandler(&fakeDirectory{snapshot: testGuildSnapshot()})
	responder := &bot.MockResponder{}

	option := &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "name",
		Type:  discordgo.ApplicationCommandOptionString,
		Value: "nobody",
	}

	if err := handler.Handle(nil, guildInteraction(option), responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if responder.Responses != 0 {
		t.Errorf("expected no response for a lookup miss, got %d", responder.Responses)
	}
}

func requireEmbed(t *testing.T, responder *bot.MockResponder) *discordgo.MessageEmbed {
	t.Helper()

	if responder.LastResponse == nil || responder.LastResponse.Data == nil {
		t.Fatal("expected a response with data")
	}
	embeds := responder.LastResponse.Data.Embeds
	if len(embeds) != 1 {
		t.Fatalf("expected 1 embed, got %d", len(embeds))
	}
	return embeds[0]
}

func requireErrorEmbed(t *testing.T, responder *bot.MockResponder) *discordgo.MessageEmbed {
	t.Helper()

	embed := requireEmbed(t, responder)
	if embed.Title != "Error" {
		t.Fatalf("expected error embed, got title %q", embed.Title)
	}
	if embed.Color != colorError {
		t.Errorf("expected error color %#x, got %#x", colorError, embed.Color)
	}
	return embed
}
