package controllers

import "errors"

// Тексты ошибок воспроизводят контракт API.
var (
	ErrInternal           = errors.New("Server error")
	ErrUserNotFound       = errors.New("User not found")
	ErrLinkNotFound       = errors.New("Link not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserOrEmailTaken   = errors.New("Username/Email already exists")
)
