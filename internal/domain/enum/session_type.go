package enum

// SessionType identifies which slot of the day a venue space is hired for.
// Stored as a plain string; rates are configured per session on the space.
type SessionType string

const (
	SessionMorning SessionType = "morning"
	SessionEvening SessionType = "evening"
	SessionFullDay SessionType = "full-day"
)

// Valid reports whether the session is one of the configured slots.
func (s SessionType) Valid() bool {
	switch s {
	case SessionMorning, SessionEvening, SessionFullDay:
		return true
	}
	return false
}
