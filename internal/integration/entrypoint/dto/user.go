package dto

// MeResponse represents the authenticated user's profile.
type MeResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
