package models

type User struct {
	ID             int    `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	HashedPassword string `json:"-"` // don’t expose hash
	IsActive       bool   `json:"is_active"`
	Role           string `json:"role"`
}
