package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthUser est l'identité extraite du JWT, passée explicitement aux handlers.
type AuthUser struct {
	ID    int64
	Email string
}
