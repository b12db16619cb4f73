package usecases

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/elliebot/ellie/internal/modules/userinfo/domain"
)

// Fallback texts for role rendering. Every missing value renders as a
// literal, never as a blank field.
const (
	noColorText    = "No display color available."
	noRolesText    = "No roles available."
	noMainRoleText = "No main role available."
)

// defaultColor is the sentinel embed color used when no role supplies one.
const defaultColor = 0x00FFFFFF

// RoleRender holds the rendered role and color fields for a member.
type RoleRender struct {
	Color       int
	ColorHex    string
	RoleNames   string
	RoleCount   int
	HighestRole string
}

// ResolveRoles computes the member's display color, role list, and
// highest-ranked role from the guild's role hierarchy. A failed
// hierarchy lookup renders the fallback text and logs a diagnostic; it
// never fails the invocation.
func ResolveRoles(member *domain.Member, snapshot *domain.GuildSnapshot) RoleRender {
	var render RoleRender

	if color, ok := snapshot.DisplayColor(member); ok {
		render.Color = color
		render.ColorHex = fmt.Sprintf("#%06x", color)
	} else {
		render.Color = defaultColor
		render.ColorHex = noColorText
	}

	roles := snapshot.RolesOf(member)
	render.RoleCount = len(roles)
	if len(roles) == 0 {
		render.RoleNames = noRolesText
	} else {
		names := make([]string, len(roles))
		for i, role := range roles {
			names[i] = role.Name
		}
		render.RoleNames = strings.Join(names, " / ")
	}

	highest, err := snapshot.HighestRole(member)
	if err != nil {
		slog.Warn("cannot get role information", "member_id", member.ID, "error", err)
		render.HighestRole = noMainRoleText
	} else {
		render.HighestRole = highest.Name
	}

	return render
}
