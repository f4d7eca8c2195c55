package services

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher хеширование и проверка паролей. Абстрагирует конкретный
// алгоритм (bcrypt) от остального сервисного слоя.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

// BcryptHasher реализация PasswordHasher поверх bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (b *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

func (b *BcryptHasher) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
