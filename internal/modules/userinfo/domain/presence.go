package domain

// Status represents a member's online status.
type Status string

const (
	StatusOnline       Status = "online"
	StatusIdle         Status = "idle"
	StatusDoNotDisturb Status = "dnd"
	StatusInvisible    Status = "invisible"
	StatusOffline      Status = "offline"
)

// Label returns the human-readable status label.
// Unrecognized statuses read as Offline.
func (s Status) Label() string {
	switch s {
	case StatusOnline:
		return "Online"
	case StatusIdle:
		return "Idle"
	case StatusDoNotDisturb:
		return "Do Not Disturb"
	case StatusInvisible:
		return "Invisible"
	default:
		return "Offline"
	}
}

// ActivityKind represents the type of a presence activity.
type ActivityKind string

const (
	ActivityPlaying   ActivityKind = "playing"
	ActivityStreaming ActivityKind = "streaming"
	ActivityListening ActivityKind = "listening"
	ActivityWatching  ActivityKind = "watching"
	ActivityCustom    ActivityKind = "custom"
	ActivityOther     ActivityKind = "other"
)

// Activity is one live activity entry on a member's presence.
// Detail fields are optional; empty strings mean the platform did not
// report them.
type Activity struct {
	Kind      ActivityKind
	Name      string
	Details   string
	State     string
	LargeText string
	SmallText string
}

// Presence holds a member's online status and ordered activity list.
// Activity order is the platform-reported order and is preserved in
// rendering.
type Presence struct {
	Status     Status
	Activities []Activity
}
