package models

// Post belongs to exactly one User via UserID (GET /posts?userId={id}).
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
