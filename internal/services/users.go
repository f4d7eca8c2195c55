package services

import (
	"context"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/repositories"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RegisterParams параметры регистрации пользователя.
type RegisterParams struct {
	Username string
	Email    string
	PhoneNo  string
	Password string
}

// UserUpdate частичное обновление профиля. Явный allow-list изменяемых полей:
// идентификатор и хеш пароля через общий PUT не редактируются, новый пароль
// проходит через хешер.
type UserUpdate struct {
	Username *string
	Email    *string
	PhoneNo  *string
	Password *string
}

// UserService работает с хранилищем в контексте коллекции пользователей.
// Каскадные операции над ссылками (переименование/удаление владельца) — два
// последовательных обращения к хранилищу, без общей транзакции.
type UserService struct {
	userRepo UserRepository
	linkRepo LinkRepository
	hasher   PasswordHasher
}

func NewUserService(userRepo UserRepository, linkRepo LinkRepository, hasher PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		linkRepo: linkRepo,
		hasher:   hasher,
	}
}

// Register создает пользователя. Занятые username или email дают ErrDuplicateKey.
func (u *UserService) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	_, existsErr := u.userRepo.FindByUsernameOrEmail(ctx, params.Username, params.Email)
	if existsErr == nil {
		return nil, errors.Wrapf(ErrDuplicateKey, "username %s or email %s taken", params.Username, params.Email)
	}
	if !errors.Is(existsErr, repositories.ErrNotFound) {
		return nil, ErrUnknown
	}

	hash, hashErr := u.hasher.Hash(params.Password)
	if hashErr != nil {
		return nil, ErrUnknown
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: params.Username,
		Email:    params.Email,
		PhoneNo:  params.PhoneNo,
		Password: hash,
	}
	if createErr := u.userRepo.Create(ctx, &user); createErr != nil {
		// уникальный индекс прикрывает гонку между проверкой и вставкой
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			return nil, errors.Wrapf(ErrDuplicateKey, "username %s or email %s taken", params.Username, params.Email)
		}
		return nil, ErrUnknown
	}
	return &user, nil
}

// Authenticate проверяет пару username/password. Отсутствие пользователя и
// неверный пароль неразличимы для вызывающего.
func (u *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrUnknown
	}
	if !u.hasher.Compare(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (u *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "user %s not found", username)
		}
		return nil, ErrUnknown
	}
	return user, nil
}

// Update применяет частичное обновление профиля. При смене username или email
// сперва проверяется занятость у других пользователей; при смене username
// owner каскадно переписывается на всех ссылках пользователя.
func (u *UserService) Update(ctx context.Context, username string, upd UserUpdate) (*models.User, error) {
	user, getErr := u.GetByUsername(ctx, username)
	if getErr != nil {
		return nil, getErr
	}

	newUsername := user.Username
	newEmail := user.Email
	if upd.Username != nil {
		newUsername = *upd.Username
	}
	if upd.Email != nil {
		newEmail = *upd.Email
	}

	if newUsername != user.Username || newEmail != user.Email {
		conflict, conflictErr := u.userRepo.ExistsConflicting(ctx, username, newUsername, newEmail)
		if conflictErr != nil {
			return nil, ErrUnknown
		}
		if conflict {
			return nil, errors.Wrapf(ErrDuplicateKey, "username %s or email %s taken", newUsername, newEmail)
		}
	}

	user.Username = newUsername
	user.Email = newEmail
	if upd.PhoneNo != nil {
		user.PhoneNo = *upd.PhoneNo
	}
	if upd.Password != nil {
		// хешируем только когда клиент прислал новый пароль, уже сохраненный
		// хеш повторно не хешируется
		hash, hashErr := u.hasher.Hash(*upd.Password)
		if hashErr != nil {
			return nil, ErrUnknown
		}
		user.Password = hash
	}

	if err := u.userRepo.Update(ctx, username, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, errors.Wrapf(ErrDuplicateKey, "username %s or email %s taken", newUsername, newEmail)
		}
		return nil, ErrUnknown
	}

	if user.Username != username {
		if err := u.linkRepo.RenameOwner(ctx, username, user.Username); err != nil {
			return nil, ErrUnknown
		}
	}
	return user, nil
}

// Delete удаляет пользователя и каскадно все его ссылки.
func (u *UserService) Delete(ctx context.Context, username string) error {
	if err := u.userRepo.DeleteByUsername(ctx, username); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errors.Wrapf(ErrRecordNotFound, "user %s not found", username)
		}
		return ErrUnknown
	}
	if err := u.linkRepo.DeleteByOwner(ctx, username); err != nil {
		return ErrUnknown
	}
	return nil
}
