// Package dto defines data transfer objects for API requests and responses.
package dto

// SignupRequest represents the request body for user signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SigninRequest represents the request body for user signin.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
