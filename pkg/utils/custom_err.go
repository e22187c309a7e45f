package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrTripNotFound       = errors.New("trip not found")
	ErrTripNotCloneable   = errors.New("trip not cloneable")
	ErrPostNotFound       = errors.New("post not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post not liked")
	ErrAlreadyFollowing   = errors.New("already following user")
)
