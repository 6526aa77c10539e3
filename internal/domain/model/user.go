package model

import (
	"time"
)

const (
	RoleStudent   = "student"
	RoleSpeaker   = "speaker"
	RoleOrganizer = "organizer"
	RoleMentor    = "mentor"
	RoleAdmin     = "admin"
)

var validRoles = map[string]bool{
	RoleStudent:   true,
	RoleSpeaker:   true,
	RoleOrganizer: true,
	RoleMentor:    true,
	RoleAdmin:     true,
}

func IsValidRole(role string) bool {
	return validRoles[role]
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	Skills         []string  `json:"skills"`
	Bio            string    `json:"bio"`
	Avatar         string    `json:"avatar"`
	Github         string    `json:"github"`
	Linkedin       string    `json:"linkedin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PublicProfile is the attendee-facing subset of User embedded in RSVP
// listings.
type PublicProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Avatar: u.Avatar}
}
