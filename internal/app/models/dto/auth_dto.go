package dto

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents an account creation request
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email"`
}

// UserInfo is the public view of an account returned after login.
type UserInfo struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Success   bool     `json:"success"`
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}
