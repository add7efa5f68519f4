package models

// User is a signup record. Passwords are stored as entered; this is a local
// demo store, not a credential vault.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
