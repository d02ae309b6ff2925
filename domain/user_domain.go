package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "User created"
	MessageSuccessLogin          = "Login successful"
	MessageSuccessUpdateUsername = "Username updated successfully"
	MessageSuccessGetProfile     = "success get profile"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedUpdateUsername = "failed to update username"
	MessageFailedGetProfile     = "failed to get profile"

	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const RoleUser = "user"

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,username"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6,max=72"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateUsernameRequest struct {
		Username string `json:"username" validate:"required,username"`
	}

	User struct {
		ID               uint      `json:"id"`
		Username         string    `json:"username"`
		Email            string    `json:"email"`
		FullName         *string   `json:"full_name"`
		ProfileImagePath *string   `json:"profile_image_path"`
		CreatedAt        time.Time `json:"created_at"`
	}

	LoginResponse struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
)
