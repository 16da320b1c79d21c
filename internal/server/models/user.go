// Package models defines the persistent record types shared by
// repositories and services.
package models

import "time"

// User is an identity record. PasswordHash always stores a one-way bcrypt
// hash, never the plaintext password, and is excluded from JSON output.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	UserName        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Headline        string    `json:"headline,omitempty"`
	About           string    `json:"about,omitempty"`
	ProfileImageKey string    `json:"profileImageKey,omitempty"`
	BannerImageKey  string    `json:"bannerImageKey,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type ProfileUpdate struct {
	Name            *string `json:"name"`
	Headline        *string `json:"headline"`
	About           *string `json:"about"`
	ProfileImageKey *string `json:"profileImageKey"`
	BannerImageKey  *string `json:"bannerImageKey"`
}
