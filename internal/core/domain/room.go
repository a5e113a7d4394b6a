package domain

import "time"

// Room is a Webex space as returned by the rooms API.
// Rooms are owned by the remote service; roomctl never mutates them.
type Room struct {
	// ID is the opaque room identifier. Surfacing this value is the
	// whole point of the tool.
	ID string `json:"id"`

	// Title is the display name of the room.
	Title string `json:"title"`

	// LastActivity is the timestamp of the most recent activity.
	// The API omits it for rooms that never had any; the zero value
	// means absent.
	LastActivity time.Time `json:"lastActivity,omitempty"`

	// Created is when the room was created. Always present.
	Created time.Time `json:"created"`
}

// EffectiveTimestamp returns the timestamp used for activity ordering:
// LastActivity when present, Created otherwise.
func (r Room) EffectiveTimestamp() time.Time {
	if !r.LastActivity.IsZero() {
		return r.LastActivity
	}
	return r.Created
}

// FormatActivity renders a room timestamp for display as "YYYY-MM-DD HH:MM".
// The zero value renders as an empty string.
func FormatActivity(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
