package models

import "time"

// Session is the single active identity for the whole store. It is a reduced
// projection of a User (no password) and lives under its own key, so at most
// one exists at a time.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}
