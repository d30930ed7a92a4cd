// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Relationship status values a user may declare on their profile.
const (
	RelationshipSingle  = 1
	RelationshipMarried = 2
	RelationshipOther   = 3
)

// User represents a user account and its position in the social graph.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	FirstName      string    `gorm:"not null" json:"firstName"`
	MiddleName     string    `json:"middleName,omitempty"`
	LastName       string    `gorm:"not null" json:"lastName"`
	Email          string    `gorm:"uniqueIndex;not null;size:60" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ProfilePicture string    `json:"profilePicture"`
	CoverPicture   string    `json:"coverPicture"`
	IsAdmin        bool      `gorm:"default:false" json:"isAdmin"`
	Bio            string    `gorm:"size:100" json:"bio,omitempty"`
	City           string    `gorm:"size:45" json:"city,omitempty"`
	State          string    `gorm:"size:45" json:"state,omitempty"`
	Relationship   *int      `json:"relationship,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Follower/following edges live in the follows table; the id sets are
	// attached at query time, never persisted on the user row.
	Followers []uint `gorm:"-" json:"followers"`
	Following []uint `gorm:"-" json:"following"`
}

// Profile is the shaped view of a user returned by profile reads. It carries
// everything a client may see: no password hash, no timestamps.
type Profile struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	CoverPicture   string `json:"coverPicture"`
	IsAdmin        bool   `json:"isAdmin"`
	Bio            string `json:"bio,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Relationship   *int   `json:"relationship,omitempty"`
	Followers      []uint `json:"followers"`
	Following      []uint `json:"following"`
}

// PublicProfile strips sensitive and internal fields from a user record.
func (u *User) PublicProfile() Profile {
	followers := u.Followers
	if followers == nil {
		followers = []uint{}
	}
	following := u.Following
	if following == nil {
		following = []uint{}
	}
	return Profile{
		ID:             u.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		MiddleName:     u.MiddleName,
		LastName:       u.LastName,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CoverPicture:   u.CoverPicture,
		IsAdmin:        u.IsAdmin,
		Bio:            u.Bio,
		City:           u.City,
		State:          u.State,
		Relationship:   u.Relationship,
		Followers:      followers,
		Following:      following,
	}
}

// BasicProfile is the minimal display subset used for feed enrichment.
type BasicProfile struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ProfilePicture string `json:"profilePicture"`
}
