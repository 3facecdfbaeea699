package dto

// RegisterRequest describes sign-up payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest describes login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
