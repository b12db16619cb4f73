package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/elliebot/ellie/internal/modules/userinfo/application/ports"
	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

// Activity names with dedicated enrichment handling.
const (
	musicActivityName  = "Spotify"
	editorActivityName = "Visual Studio Code"
)

// PresenceRender is the rendered form of a member's presence.
// Both phrases are empty when the member has no presence record.
type PresenceRender struct {
	StatusPhrase     string
	ActivitiesPhrase string
	ThumbnailURL     string
}

// PresenceService renders a member's presence into reply fragments,
// enriching recognized activities with catalog metadata.
type PresenceService struct {
	searcher ports.TrackSearcher
}

// NewPresenceService creates a new PresenceService. The searcher may be
// nil, in which case music activities render with the generic phrase.
func NewPresenceService(searcher ports.TrackSearcher) *PresenceService {
	return &PresenceService{searcher: searcher}
}

// Render produces the status and activity phrases for a presence.
// Custom activities are never shown. Enrichment failures degrade to the
// generic phrase; they never abort the render.
func (s *PresenceService) Render(
	ctx context.Context,
	memberName string,
	presence *domain.Presence,
) PresenceRender {
	if presence == nil {
		return PresenceRender{}
	}

	var thumbnail string
	var entries []string
	for _, activity := range presence.Activities {
		if activity.Kind == domain.ActivityCustom {
			continue
		}

		verb, name, artworkURL := s.renderActivity(ctx, activity)
		if thumbnail == "" {
			thumbnail = artworkURL
		}
		entries = append(entries, strings.TrimSpace(verb+" **"+name+"**"))
	}
	joined := strings.Join(entries, " and ")

	status := memberName + " is currently "
	if presence.Status == domain.StatusDoNotDisturb {
		status += "in **Do Not Disturb** mode"
	} else {
		status += "**" + presence.Status.Label() + "**"
	}
	if joined == "" {
		status += ".\n\n"
	}

	var activities string
	if joined != "" {
		activities = "; " + joined + ".\n\n"
	}

	return PresenceRender{
		StatusPhrase:     status,
		ActivitiesPhrase: activities,
		ThumbnailURL:     thumbnail,
	}
}

// renderActivity returns the verb phrase, displayed name, and optional
// artwork URL for a single activity entry.
func (s *PresenceService) renderActivity(
	ctx context.Context,
	activity domain.Activity,
) (verb, name, artworkURL string) {
	name = activity.Name

	switch activity.Kind {
	case domain.ActivityListening:
		if activity.Name == musicActivityName {
			phrase, artwork, err := s.enrichMusic(ctx, activity)
			if err != nil {
				slog.Warn("music enrichment unavailable, using generic phrase",
					"activity", activity.Name, "error", err)
				return "listening to", name, ""
			}
			return phrase, name, artwork
		}
		return "listening to", name, ""

	case domain.ActivityPlaying:
		if activity.Name == editorActivityName {
			phrase, app, ok := renderDevelopment(activity)
			if ok {
				if app != "" {
					name = app
				}
				return phrase, name, ""
			}
		}
		return "playing", name, ""

	case domain.ActivityWatching:
		return "watching", name, ""

	case domain.ActivityStreaming:
		return "streaming on", name, ""

	default:
		return "", name, ""
	}
}

// enrichMusic builds the detailed listening phrase for a music activity
// and looks up the album art via the track-search collaborator. Returns
// ErrNoEnrichment when required fields are missing or the search yields
// nothing usable.
func (s *PresenceService) enrichMusic(
	ctx context.Context,
	activity domain.Activity,
) (phrase, artworkURL string, err error) {
	song := activity.Details
	artist := strings.ReplaceAll(activity.State, ";", " & ")
	album := activity.LargeText
	if song == "" || artist == "" || album == "" {
		return "", "", ErrNoEnrichment
	}

	if s.searcher == nil {
		return "", "", ErrNoEnrichment
	}

	query := fmt.Sprintf("track: %s artist: %s album: %s",
		song,
		strings.ReplaceAll(artist, "&", "AND"),
		strings.ReplaceAll(album, "&", "%26"),
	)

	results, err := s.searcher.SearchTrack(ctx, query, 1, 0)
	if err != nil {
		return "", "", fmt.Errorf("track search failed: %w", err)
	}
	if len(results) == 0 {
		return "", "", ErrNoEnrichment
	}

	phrase = fmt.Sprintf("listening to **%s** by **%s** on the album **%s** via",
		song, artist, album)
	return phrase, results[0].ArtworkURL, nil
}

// renderDevelopment builds the phrase for a code-editor activity. The
// displayed name is replaced by the originating application name when
// the activity reports one.
func renderDevelopment(activity domain.Activity) (phrase, app string, ok bool) {
	if activity.Details == "" || activity.State == "" {
		return "", "", false
	}

	file := strings.TrimPrefix(activity.Details, "Editing ")
	project := strings.TrimPrefix(activity.State, "Workspace: ")
	phrase = fmt.Sprintf("working on the file **%s** in the project **%s** with",
		file, project)
	return phrase, activity.SmallText, true
}
