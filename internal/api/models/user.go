// Package models holds the TrackWallet domain records as they travel over
// the wire. Every entity has a "new" form (not yet persisted) and a
// persisted form that embeds it and adds the server-assigned identity and
// timestamps.
package models

import "trackwallet/internal/api/primitives"

// NewUser is a user profile before it is stored. The identity provider
// assigns the user id, so the new form already carries it.
type NewUser struct {
	UserID         primitives.UserID    `json:"userId"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	ProfilePicture primitives.URLString `json:"profilePicture"`
}

// User is a stored user profile.
type User struct {
	NewUser
	Created primitives.UnixTimestampString `json:"created"`
	Updated primitives.UnixTimestampString `json:"updated"`
}
