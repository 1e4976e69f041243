package dto

import "github.com/polkiloo/procurement-console/internal/access"

// UserResponse describes the signed-in operator.
type UserResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
}

// SessionResponse is returned by GET /api/session.
type SessionResponse struct {
	User         UserResponse        `json:"user"`
	Initial      string              `json:"initial"`
	Capabilities access.Capabilities `json:"capabilities"`
}

// MenuEntryResponse is one visible navigation entry.
type MenuEntryResponse struct {
	Route  string `json:"route"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	TestID string `json:"test_id"`
}
