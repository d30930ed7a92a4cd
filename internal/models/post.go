package models

import (
	"time"
)

// Post represents a content unit owned by exactly one user. The author id is
// immutable after creation; likes live in the likes table and are attached as
// a user-id set at query time.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Desc      string    `gorm:"size:500" json:"desc,omitempty"`
	Img       string    `json:"img,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Likes []uint `gorm:"-" json:"likes"`

	// Author display fields, joined in by the timeline assembler. Omitted
	// when the author no longer resolves.
	Username       string `gorm:"-" json:"username,omitempty"`
	FirstName      string `gorm:"-" json:"firstName,omitempty"`
	LastName       string `gorm:"-" json:"lastName,omitempty"`
	ProfilePicture string `gorm:"-" json:"profilePicture,omitempty"`
}
