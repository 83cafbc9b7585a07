// Package models defines the data types exchanged with the Health App
// backend API.
package models

import (
	"github.com/ebalashova/healthapp-cli/internal/timex"
)

// Role describes a user's system role as returned inside the profile record.
type Role struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UserProfile is the profile record returned by the backend. Optional profile
// fields are pointers: the server omits or nulls them when unset.
type UserProfile struct {
	ID                      int64          `json:"id"`
	Username                string         `json:"username"`
	Email                   string         `json:"email"`
	FirstName               *string        `json:"first_name,omitempty"`
	LastName                *string        `json:"last_name,omitempty"`
	ChildName               *string        `json:"child_name,omitempty"`
	ChildSexAssignedAtBirth *string        `json:"child_sex_assigned_at_birth,omitempty"`
	ChildDOB                *timex.Date    `json:"child_dob,omitempty"`
	AvatarURL               *string        `json:"avatar_url,omitempty"`
	Role                    Role           `json:"role"`
	EmailVerified           bool           `json:"email_verified"`
	IsActive                bool           `json:"is_active"`
	CreatedAt               timex.DateTime `json:"created_at"`
	UpdatedAt               timex.DateTime `json:"updated_at"`
}

// DisplayName returns the best human-readable name available.
func (u *UserProfile) DisplayName() string {
	if u.FirstName != nil && u.LastName != nil {
		return *u.FirstName + " " + *u.LastName
	}
	if u.FirstName != nil {
		return *u.FirstName
	}
	return u.Username
}

// ProfileUpdate is a partial profile update. Nil fields are left unchanged
// by the server; fields are independently updatable.
type ProfileUpdate struct {
	FirstName               *string     `json:"first_name,omitempty"`
	LastName                *string     `json:"last_name,omitempty"`
	ChildName               *string     `json:"child_name,omitempty"`
	ChildSexAssignedAtBirth *string     `json:"child_sex_assigned_at_birth,omitempty"`
	ChildDOB                *timex.Date `json:"child_dob,omitempty"`
	AvatarURL               *string     `json:"avatar_url,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (p *ProfileUpdate) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.ChildName == nil &&
		p.ChildSexAssignedAtBirth == nil && p.ChildDOB == nil && p.AvatarURL == nil
}

// RegisterRequest is the payload for creating a new account. New users get
// the "user" role unless the caller is allowed to set another one.
type RegisterRequest struct {
	Username                string      `json:"username"`
	Email                   string      `json:"email"`
	Password                string      `json:"password"`
	FirstName               *string     `json:"first_name,omitempty"`
	LastName                *string     `json:"last_name,omitempty"`
	ChildName               *string     `json:"child_name,omitempty"`
	ChildSexAssignedAtBirth *string     `json:"child_sex_assigned_at_birth,omitempty"`
	ChildDOB                *timex.Date `json:"child_dob,omitempty"`
	AvatarURL               *string     `json:"avatar_url,omitempty"`
}

// Credentials is the JSON body for the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
