package dto

import (
	"time"

	"campusforum/internal/http-api/models"
)

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest: payload for user login. Identifier is a username or an email.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UpdateProfileRequest: partial profile update, nil fields are left unchanged
type UpdateProfileRequest struct {
	Email         *string `json:"email" binding:"omitempty,email"`
	RealName      *string `json:"real_name" binding:"omitempty,max=100"`
	StudentID     *string `json:"student_id" binding:"omitempty,max=50"`
	AdmissionYear *int    `json:"admission_year" binding:"omitempty,min=1900,max=2100"`
}

// UserResponse: public view of a user account
type UserResponse struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	RealName      string    `json:"real_name,omitempty"`
	StudentID     string    `json:"student_id,omitempty"`
	AdmissionYear int       `json:"admission_year,omitempty"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		RealName:      user.RealName,
		StudentID:     user.StudentID,
		AdmissionYear: user.AdmissionYear,
		IsAdmin:       user.IsAdmin,
		CreatedAt:     user.CreatedAt,
	}
}
