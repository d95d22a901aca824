package user

import (
	"errors"
	"time"
)

// ErrUnauthenticated covers an unknown username and a wrong password alike
var ErrUnauthenticated = errors.New("invalid credentials")

// ErrUsernameTaken indicates a registration against an existing username
var ErrUsernameTaken = errors.New("username already taken")

// ErrMissingFields indicates an empty username or password
var ErrMissingFields = errors.New("username and password are required")

type User struct {
	Id        string    `json:"id" example:"0b54f26c-21c8-4b9a-bb7a-4b6f3a4cdd9e"`
	Username  string    `json:"username" example:"gabriel"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Session struct {
	Token string `json:"token"`
}
