package models

// User is a single record from the remote directory API (GET /users/{id}).
// Field names mirror the API's JSON; nested objects are kept to the fields
// the dashboard actually displays.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

type Address struct {
	City string `json:"city"`
}

type Company struct {
	Name string `json:"name"`
}
