package services

import (
	"context"

	"github.com/fsdevblog/linkward/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// UserRepository описывает репозиторий пользователей.
type UserRepository interface {
	// Create создает запись пользователя. Возвращает ErrDuplicateKey при
	// нарушении уникальности username или email.
	Create(ctx context.Context, user *models.User) error
	// GetByUsername находит пользователя по username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByUsernameOrEmail возвращает первого пользователя с заданным username или email.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	// ExistsConflicting проверяет занятость username/email другим пользователем.
	ExistsConflicting(ctx context.Context, exceptUsername, username, email string) (bool, error)
	// Update сохраняет измененного пользователя. prevUsername — ключ записи до изменения.
	Update(ctx context.Context, prevUsername string, user *models.User) error
	// DeleteByUsername удаляет пользователя.
	DeleteByUsername(ctx context.Context, username string) error
}

// LinkRepository описывает репозиторий ссылок.
type LinkRepository interface {
	// Create создает запись ссылки. Возвращает ErrDuplicateKey при коллизии short_link.
	Create(ctx context.Context, link *models.Link) error
	// GetByShortLink находит ссылку по короткому идентификатору.
	GetByShortLink(ctx context.Context, shortLink string) (*models.Link, error)
	// GetByOwnerShortLink находит ссылку по паре (owner, short_link).
	GetByOwnerShortLink(ctx context.Context, owner, shortLink string) (*models.Link, error)
	// GetAll возвращает все записи в бд. Сразу пачкой.
	GetAll(ctx context.Context) ([]models.Link, error)
	// GetAllByOwner возвращает записи связанные с owner.
	GetAllByOwner(ctx context.Context, owner string) ([]models.Link, error)
	// Update сохраняет измененную ссылку.
	Update(ctx context.Context, link *models.Link) error
	// RenameOwner переписывает owner на всех ссылках oldOwner.
	RenameOwner(ctx context.Context, oldOwner, newOwner string) error
	// DeleteByOwnerShortLink удаляет ссылку по паре (owner, short_link).
	DeleteByOwnerShortLink(ctx context.Context, owner, shortLink string) error
	// DeleteByOwner удаляет все ссылки владельца.
	DeleteByOwner(ctx context.Context, owner string) error
}
