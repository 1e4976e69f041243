package dto

// RefreshRequest names the domains to invalidate, or all of them.
type RefreshRequest struct {
	Domains []string `json:"domains"`
	All     bool     `json:"all"`
}

// RefreshResponse carries the stamp of every domain.
type RefreshResponse struct {
	Stamps    map[string]uint64 `json:"stamps"`
	Triggered []string          `json:"triggered,omitempty"`
}
