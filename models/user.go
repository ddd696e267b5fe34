package models

import "time"

// User is a registered account. PasswordHash stays on the server side and is
// never serialized.
type User struct {
	UserID       int64     `json:"id"`
	Username     string    `json:"username"` // unique, case-sensitive, 3 to 50 characters
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u User) TableName() string {
	return "users"
}

// Credentials is the body of POST /auth/register and POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
