package model

import (
	"time"
)

// RSVP links a user to an event they intend to attend.
type RSVP struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Attendee is an RSVP record joined with the attendee's public profile.
type Attendee struct {
	RSVP
	User PublicProfile `json:"user"`
}

// RSVPedEvent is an event snapshot decorated with the caller's RSVP
// metadata, used for the "my RSVPs" listing.
type RSVPedEvent struct {
	Event
	RSVPID   string    `json:"rsvp_id"`
	RSVPDate time.Time `json:"rsvp_date"`
}
