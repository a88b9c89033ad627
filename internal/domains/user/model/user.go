package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// User.PasswordHash never leaves the service layer.
type User struct {
	ID           int
	Firstname    string
	Lastname     string
	Email        string
	PasswordHash string
}

// UserChanges carries a partial update; nil fields are left as they are.
type UserChanges struct {
	Firstname *string
	Lastname  *string
	Email     *string
}

// ========================================
// DTOs
// ========================================

type CreateUserRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Firstname, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Lastname, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat, validation.Length(3, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

type UpdateUserRequest struct {
	ID        *int    `json:"id"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.NotNil.Error("id is required"), validation.Min(1)),
		validation.Field(&r.Firstname, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Lastname, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.EmailFormat, validation.Length(3, 255)),
	)
}

type UserResponse struct {
	ID        int    `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

func ToResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
	}
}

// NormalizeEmail is applied before every store lookup or write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
