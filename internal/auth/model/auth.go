// Package model provides DTOs and errors for admin authentication.
package model

import "errors"

// LoginForm is the admin sign-in form.
type LoginForm struct {
	Password string `form:"password"`
}

// LoginRequest is the API login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse is the API login result. Token is opaque to the portal.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

var (
	// ErrEmptyPassword indicates that no password was submitted.
	ErrEmptyPassword = errors.New("password is required")
	// ErrLoginRejected indicates the API answered without success.
	ErrLoginRejected = errors.New("login rejected")
)
