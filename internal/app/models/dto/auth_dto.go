package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// TokenResponse represents session token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Student StudentResponse `json:"student"`
}

// RegisterStudentRequest represents a new account registration. Email shape
// and password rules are enforced by the domain service, not binding tags,
// so the service stays safe to reuse outside HTTP.
type RegisterStudentRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Program         string `json:"program" binding:"required"`
	Semester        string `json:"semester" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// RegisterStudentResponse returns the generated account identity.
type RegisterStudentResponse struct {
	Student StudentResponse `json:"student"`
}
