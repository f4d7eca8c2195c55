package memstore

import (
	"context"
	"fmt"

	"github.com/fsdevblog/linkward/internal/db"
	"github.com/fsdevblog/linkward/internal/db/memory"
	"github.com/fsdevblog/linkward/internal/models"
)

// UserRepo репозиторий пользователей поверх in-memory хранилища.
// Ключом документа выступает username.
type UserRepo struct {
	s *db.MemoryStorage
}

func NewUserRepo(store *db.MemoryStorage) *UserRepo {
	return &UserRepo{
		s: store,
	}
}

// Create создает запись пользователя.
//
// Параметры:
//   - ctx: контекст выполнения
//   - user: данные пользователя
//
// Возвращает:
//   - error: ошибка создания (преобразованная через convertErrorType)
func (u *UserRepo) Create(ctx context.Context, user *models.User) error {
	if err := memory.Set[models.User](ctx, user.Username, user, u.s.Users); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Username, convertErrorType(err))
	}
	return nil
}

// GetByUsername получает пользователя по username.
//
// Параметры:
//   - ctx: контекст выполнения
//   - username: имя пользователя
//
// Возвращает:
//   - *models.User: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (u *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := memory.Get[models.User](ctx, username, u.s.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, convertErrorType(err))
	}
	return user, nil
}

// FindByUsernameOrEmail возвращает первого пользователя с заданным username
// или email.
//
// Параметры:
//   - ctx: контекст выполнения
//   - username: имя пользователя
//   - email: адрес почты
//
// Возвращает:
//   - *models.User: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (u *UserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	data, err := memory.FilterAll[models.User](ctx, u.s.Users, func(val models.User) bool {
		return val.Username == username || val.Email == email
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to find user by username %s or email %s: %w",
			username, email, convertErrorType(err),
		)
	}
	if len(data) == 0 {
		return nil, convertErrorType(memory.ErrNotFound)
	}
	return &data[0], nil
}

// ExistsConflicting проверяет, не занят ли username или email другим
// пользователем (кроме exceptUsername).
//
// Параметры:
//   - ctx: контекст выполнения
//   - exceptUsername: пользователь, исключаемый из проверки
//   - username: проверяемое имя
//   - email: проверяемый адрес почты
//
// Возвращает:
//   - bool: признак конфликта
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (u *UserRepo) ExistsConflicting(ctx context.Context, exceptUsername, username, email string) (bool, error) {
	data, err := memory.FilterAll[models.User](ctx, u.s.Users, func(val models.User) bool {
		if val.Username == exceptUsername {
			return false
		}
		return val.Username == username || val.Email == email
	})
	if err != nil {
		return false, fmt.Errorf(
			"failed to check conflicting users for %s: %w",
			exceptUsername, convertErrorType(err),
		)
	}
	return len(data) > 0, nil
}

// Update сохраняет измененного пользователя. При смене username документ
// переезжает на новый ключ: запись по новому ключу, затем удаление старого.
//
// Параметры:
//   - ctx: контекст выполнения
//   - prevUsername: username до изменения (ключ текущего документа)
//   - user: данные пользователя
//
// Возвращает:
//   - error: ошибка сохранения (преобразованная через convertErrorType)
func (u *UserRepo) Update(ctx context.Context, prevUsername string, user *models.User) error {
	if prevUsername == user.Username {
		if err := memory.Set[models.User](ctx, user.Username, user, u.s.Users, memory.WithOverwrite()); err != nil {
			return fmt.Errorf("failed to update user %s: %w", user.Username, convertErrorType(err))
		}
		return nil
	}

	if err := memory.Set[models.User](ctx, user.Username, user, u.s.Users); err != nil {
		return fmt.Errorf("failed to move user %s to %s: %w", prevUsername, user.Username, convertErrorType(err))
	}
	if err := memory.Delete(ctx, prevUsername, u.s.Users); err != nil {
		return fmt.Errorf("failed to remove stale user key %s: %w", prevUsername, convertErrorType(err))
	}
	return nil
}

// DeleteByUsername удаляет пользователя.
//
// Параметры:
//   - ctx: контекст выполнения
//   - username: имя пользователя
//
// Возвращает:
//   - error: ошибка удаления (преобразованная через convertErrorType)
func (u *UserRepo) DeleteByUsername(ctx context.Context, username string) error {
	if err := memory.Delete(ctx, username, u.s.Users); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", username, convertErrorType(err))
	}
	return nil
}
