package model

import (
	"time"
)

type EventCategory string
type EventStatus string

const (
	CategoryWorkshop   EventCategory = "workshop"
	CategoryWebinar    EventCategory = "webinar"
	CategoryHackathon  EventCategory = "hackathon"
	CategoryMeetup     EventCategory = "meetup"
	CategoryConference EventCategory = "conference"
	CategoryBootcamp   EventCategory = "bootcamp"
	CategoryOther      EventCategory = "other"

	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

var validCategories = map[EventCategory]bool{
	CategoryWorkshop:   true,
	CategoryWebinar:    true,
	CategoryHackathon:  true,
	CategoryMeetup:     true,
	CategoryConference: true,
	CategoryBootcamp:   true,
	CategoryOther:      true,
}

var validStatuses = map[EventStatus]bool{
	StatusUpcoming:  true,
	StatusOngoing:   true,
	StatusCompleted: true,
	StatusCancelled: true,
}

func IsValidCategory(c EventCategory) bool {
	return validCategories[c]
}

func IsValidStatus(s EventStatus) bool {
	return validStatuses[s]
}

type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Location    string        `json:"location"`
	Speaker     string        `json:"speaker"`
	Category    EventCategory `json:"category"`
	Capacity    int           `json:"capacity"` // 0 means unlimited
	Tags        []string      `json:"tags"`
	IsOnline    bool          `json:"is_online"`
	MeetingLink string        `json:"meeting_link"`
	CreatedByID *string       `json:"created_by_id,omitempty"`
	Status      EventStatus   `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	RSVPCount      int     `json:"rsvp_count"`                 // Computed from the rsvps table, never stored
	CreatedByName  *string `json:"created_by_name,omitempty"`  // For display
	CreatedByEmail *string `json:"created_by_email,omitempty"` // For display
}

// CategoryCount is one row of the per-category aggregation used by the
// dashboard.
type CategoryCount struct {
	Category EventCategory `json:"category"`
	Count    int           `json:"count"`
}

// Stats is the dashboard aggregate.
type Stats struct {
	TotalEvents    int             `json:"total_events"`
	UpcomingEvents int             `json:"upcoming_events"`
	TotalRSVPs     int             `json:"total_rsvps"`
	CategoryCounts []CategoryCount `json:"category_counts"`
}
