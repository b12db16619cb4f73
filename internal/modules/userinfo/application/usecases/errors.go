package usecases

import "errors"

// Errors for the user info pipeline.
var (
	// ErrNotInGuild is returned when the command is invoked outside a guild.
	ErrNotInGuild = errors.New("this command can only be used in a guild")

	// ErrMemberNotFound is returned when the target member has no record in the guild.
	ErrMemberNotFound = errors.New("could not find member")

	// ErrNoEnrichment is returned inside the enrichment engine when the
	// catalog search fails or returns no usable result. It never escapes
	// the engine; the rendered phrase degrades instead.
	ErrNoEnrichment = errors.New("no enrichment result available")
)
