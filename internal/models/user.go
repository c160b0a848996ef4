package models

// User is the profile shape returned by the upstream /auth/me endpoint.
type User struct {
	CustomerID int    `json:"customer_id"`
	Role       string `json:"role"`
	Email      string `json:"email,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the upstream bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
