package models

// User is the authenticated identity returned by the login endpoint and
// persisted alongside the token.
type User struct {
	Login string `json:"login"`
}
