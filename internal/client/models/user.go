// Package models defines the data transfer objects exchanged with the
// platform API.
package models

import "time"

// User is the authenticated identity record. IsAdmin marks elevated
// (administrative) privilege and gates the admin screens.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// UserUpdate carries the editable profile/user fields. Nil pointers mean
// "leave unchanged".
type UserUpdate struct {
	Email   *string `json:"email,omitempty"`
	Name    *string `json:"name,omitempty"`
	IsAdmin *bool   `json:"is_admin,omitempty"`
}

// NewUser is the payload for creating an account from the admin screen.
type NewUser struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
	PlanID   string `json:"plan_id,omitempty"`
}
