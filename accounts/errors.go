package accounts

import "errors"

var (
	ErrDuplicateAccount  = errors.New("an account with this email already exists, please sign in instead")
	ErrAccountNotFound   = errors.New("no account found with this email, please sign up first")
	ErrInvalidCredential = errors.New("incorrect password, please try again")
	ErrNoActiveSession   = errors.New("no active session")
)
