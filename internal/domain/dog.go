package domain

import (
	"errors"
	"time"
)

var (
	ErrDogNotFound   = errors.New("dog not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

// Dog is a profile owned by a User. UserID must reference an existing
// account; the database enforces the constraint.
type Dog struct {
	ID     int64
	UserID int64
	Name   string

	Breed     *string
	DOB       *time.Time
	Sex       *string // e.g. "M", "F", "Other"
	AvatarURL *string
	Notes     *string

	CreatedAt time.Time
}
