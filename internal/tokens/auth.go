package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// SessionClaims представляет данные JWT токена сессии пользователя.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateSessionJWT создает JWT токен сессии.
//
// Параметры:
//   - userID: идентификатор пользователя
//   - expire: срок действия токена
//   - key: ключ для подписи токена
//
// Возвращает:
//   - string: сгенерированный JWT токен
//   - error: ошибка генерации токена
func GenerateSessionJWT(userID string, expire time.Duration, key []byte) (string, error) {
	sessionClaims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}
	token, err := generateJWT(sessionClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating session jwt token: %w", err)
	}
	return token, nil
}

// ValidateSessionJWT проверяет JWT токен сессии.
//
// Параметры:
//   - tokenString: JWT токен в виде строки
//   - key: ключ для проверки подписи
//
// Возвращает:
//   - *SessionClaims: данные проверенного токена
//   - error: ошибка проверки (ErrTokenExpired если истек срок действия)
func ValidateSessionJWT(tokenString string, key []byte) (*SessionClaims, error) {
	token, err := validateJWT(tokenString, new(SessionClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating session jwt token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// generateJWT создает JWT токен с указанными данными.
func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}

	return tokenString, nil
}

// validateJWT проверяет JWT токен.
func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}

	return token, nil
}
