package models

import (
	"errors"

	goval "github.com/go-passwd/validator"
	apiError "github.com/techagentng/bookxchange/errors"
)

const MaxPasswordLength = 128

// User represents a registered member of the exchange
type User struct {
	Model
	Username       string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email          string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"not null"`
}

type RegisterRequest struct {
	Username string `form:"username" json:"username" conform:"trim" validate:"required,max=80"`
	Email    string `form:"email" json:"email" conform:"trim" validate:"required,max=120,email"`
	Password string `form:"password" json:"password" validate:"required"`
	Confirm  string `form:"confirm" json:"confirm" validate:"eqfield=Password"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" conform:"trim"`
	Password string `form:"password" json:"password"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	UserResponse
	AccessToken string `json:"-"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

// Validate trims the request in place and checks it.
func (r *RegisterRequest) Validate() error {
	if err := validateWhiteSpaces(r); err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return translateError(err, apiError.ErrFieldsRequired)
	}
	return ValidatePassword(r.Password)
}

// Normalize trims the username; passwords are taken as typed.
func (r *LoginRequest) Normalize() error {
	return validateWhiteSpaces(r)
}

// ValidatePassword bounds the password length; there is no minimum.
func ValidatePassword(password string) error {
	passwordValidator := goval.New(
		goval.MaxLength(MaxPasswordLength, errors.New("password cant be more than 128 characters")),
	)
	if err := passwordValidator.Validate(password); err != nil {
		return apiError.Validation("Password must be at most 128 characters.")
	}
	return nil
}
