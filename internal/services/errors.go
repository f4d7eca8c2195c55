package services

import "errors"

var (
	ErrUnknown            = errors.New("[service]: unknown error")
	ErrRecordNotFound     = errors.New("[service]: record not found")
	ErrDuplicateKey       = errors.New("[service]: duplicate key")
	ErrInvalidCredentials = errors.New("[service]: invalid credentials")
	// ErrShortCodeExhausted лимит попыток генерации уникального короткого кода.
	ErrShortCodeExhausted = errors.New("[service]: short code attempts exhausted")
)
