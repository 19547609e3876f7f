package dto

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token plus the identity the client
// needs to render role-gated UI. The server never trusts it back.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
