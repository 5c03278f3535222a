package models

import "time"

// Profile is the combined result of one fetch pipeline for a single user:
// the user record, their posts, and the post count. It lives for one
// request/render cycle and is never persisted.
type Profile struct {
	User      User      `json:"user"`
	Posts     []Post    `json:"posts"`
	PostCount int       `json:"post_count"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ProfileSummary is the per-user row produced by a batch fetch.
type ProfileSummary struct {
	Name      string `json:"name"`
	PostCount int    `json:"post_count"`
}

// RegionSnapshot is the current content of the dashboard output region.
type RegionSnapshot struct {
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updated_at"`
}
