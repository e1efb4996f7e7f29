// Package models contains the core data types for rollcall.
package models

// Activity describes one extracurricular activity as reported by the
// sign-up service. The zero value is an activity with no participants.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity. The service enforces the
// cap, but a stale snapshot can briefly report more participants than
// capacity, so the result is clamped at zero.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}
