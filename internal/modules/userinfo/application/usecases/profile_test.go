package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

func newProfileService(matcher *mockMatcher, searcher *mockSearcher) *ProfileService {
	return NewProfileService(
		NewResolverService(matcher),
		NewPresenceService(searcher),
	)
}

func TestProfileService_BuildProfile_NoPresence(t *testing.T) {
	created := fixedTime(2020, time.March, 14)
	member := &domain.Member{
		ID:            snowflake.New(created),
		Username:      "ellie",
		Discriminator: "0001",
		AvatarURL:     "https://cdn.example/avatar.png",
	}
	snapshot := snapshotWith([]*domain.RoleInfo{everyoneRole()}, []*domain.Member{member}, nil)
	service := newProfileService(&mockMatcher{}, &mockSearcher{})

	profile, err := service.BuildProfile(context.Background(), BuildProfileInput{
		Snapshot:  snapshot,
		InvokerID: member.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil {
		t.Fatal("expected profile, got nil")
	}

	// No presence: the body starts directly with the static sections.
	if !strings.HasPrefix(profile.Body, "**__User Information__**:") {
		t.Errorf("expected body to start with the user section, got %q", profile.Body)
	}

	wantFields := []string{
		"**Type**: User",
		"**Tag**: ellie#0001",
		"**Creation Date**: Saturday, March 14, 2020 @ 12:30 pm",
		"**__Guild-related Information__**:",
		"**Join Date**: Unavailable",
		"**Nickname**: No nickname has been set.",
		"**Display Color**: No display color available.",
		"**Main Role**: @everyone",
		"**Roles (0)**: No roles available.",
	}
	for _, field := range wantFields {
		if !strings.Contains(profile.Body, field) {
			t.Errorf("expected body to contain %q\nbody: %q", field, profile.Body)
		}
	}

	if profile.AuthorName != "ellie" {
		t.Errorf("expected author name %q, got %q", "ellie", profile.AuthorName)
	}
	if profile.AuthorIconURL != "https://cdn.example/avatar.png" {
		t.Errorf("expected author icon URL, got %q", profile.AuthorIconURL)
	}
	if profile.ThumbnailURL != "" {
		t.Errorf("expected no thumbnail, got %q", profile.ThumbnailURL)
	}
	if profile.Color != defaultColor {
		t.Errorf("expected sentinel color %#x, got %#x", defaultColor, profile.Color)
	}
}

func TestProfileService_BuildProfile_FullPipeline(t *testing.T) {
	joined := fixedTime(2021, time.June, 1)
	member := &domain.Member{
		ID:            snowflake.New(fixedTime(2020, time.March, 14)),
		Username:      "ellie",
		Discriminator: "0001",
		Nickname:      "El",
		Bot:           true,
		JoinedAt:      joined,
		RoleIDs:       []snowflake.ID{202},
	}
	roles := []*domain.RoleInfo{
		everyoneRole(),
		{ID: 202, Name: "DJ", Rank: 5, Color: 0x1DB954},
	}
	presences := map[snowflake.ID]*domain.Presence{
		member.ID: {
			Status:     domain.StatusDoNotDisturb,
			Activities: []domain.Activity{spotifyActivity()},
		},
	}
	snapshot := snapshotWith(roles, []*domain.Member{member}, presences)

	searcher := &mockSearcher{
		results: []ports.TrackResult{
			{Title: "Song", Album: "Album", ArtworkURL: "https://img.example/album.jpg"},
		},
	}
	service := newProfileService(&mockMatcher{}, searcher)

	profile, err := service.BuildProfile(context.Background(), BuildProfileInput{
		Snapshot:  snapshot,
		InvokerID: member.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPrefix := "ellie is currently in **Do Not Disturb** mode; " +
		"listening to **Song** by **Artist1 & Artist2** on the album **Album** " +
		"via **Spotify**.\n\n"
	if !strings.HasPrefix(profile.Body, wantPrefix) {
		t.Errorf("expected body prefix %q\nbody: %q", wantPrefix, profile.Body)
	}

	wantFields := []string{
		"**Type**: Bot",
		"**Join Date**: Tuesday, June  1, 2021 @ 12:30 pm",
		"**Nickname**: El",
		"**Display Color**: #1db954",
		"**Main Role**: DJ",
		"**Roles (1)**: DJ",
	}
	for _, field := range wantFields {
		if !strings.Contains(profile.Body, field) {
			t.Errorf("expected body to contain %q\nbody: %q", field, profile.Body)
		}
	}

	if profile.ThumbnailURL != "https://img.example/album.jpg" {
		t.Errorf("expected album art thumbnail, got %q", profile.ThumbnailURL)
	}
	if profile.Color != 0x1DB954 {
		t.Errorf("expected role color %#x, got %#x", 0x1DB954, profile.Color)
	}
}

func TestProfileService_BuildProfile_Idempotent(t *testing.T) {
	member := &domain.Member{
		ID:            snowflake.New(fixedTime(2020, time.March, 14)),
		Username:      "ellie",
		Discriminator: "0001",
		RoleIDs:       []snowflake.ID{202},
	}
	roles := []*domain.RoleInfo{
		everyoneRole(),
		{ID: 202, Name: "DJ", Rank: 5, Color: 0x1DB954},
	}
	presences := map[snowflake.ID]*domain.Presence{
		member.ID: {
			Status:     domain.StatusOnline,
			Activities: []domain.Activity{spotifyActivity()},
		},
	}
	snapshot := snapshotWith(roles, []*domain.Member{member}, presences)

	searcher := &mockSearcher{
		results: []ports.TrackResult{{ArtworkURL: "https://img.example/album.jpg"}},
	}
	service := newProfileService(&mockMatcher{}, searcher)
	input := BuildProfileInput{Snapshot: snapshot, InvokerID: member.ID}

	first, err := service.BuildProfile(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.BuildProfile(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *first != *second {
		t.Errorf("expected identical output for identical input:\nfirst:  %+v\nsecond: %+v",
			first, second)
	}
}

func TestProfileService_BuildProfile_SilentMiss(t *testing.T) {
	snapshot := snapshotWith(nil, nil, nil)
	service := newProfileService(&mockMatcher{}, &mockSearcher{})

	profile, err := service.BuildProfile(context.Background(), BuildProfileInput{
		Snapshot: snapshot,
		FreeText: "nobody",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile != nil {
		t.Errorf("expected nil profile for a silent miss, got %+v", profile)
	}
}

func TestProfileService_BuildProfile_ResolutionError(t *testing.T) {
	service := newProfileService(&mockMatcher{}, &mockSearcher{})

	_, err := service.BuildProfile(context.Background(), BuildProfileInput{})
	if !errors.Is(err, ErrNotInGuild) {
		t.Errorf("expected ErrNotInGuild, got %v", err)
	}
}
