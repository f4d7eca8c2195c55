package sql

import (
	"context"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewUserRepo(db *gorm.DB, logger *logrus.Logger) *UserRepo {
	return &UserRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/user"),
	}
}

func (u *UserRepo) Create(ctx context.Context, user *models.User) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			u.logger.WithError(err).Errorf("failed to create user %s", user.Username)
		}
		return convertErrorType(err)
	}
	return nil
}

func (u *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			u.logger.WithError(err).Errorf("failed to get user by username %s", username)
		}
		return nil, convertErrorType(err)
	}
	return &user, nil
}

// FindByUsernameOrEmail возвращает первого пользователя с заданным username
// или email. Используется при регистрации для проверки занятости.
func (u *UserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			u.logger.WithError(err).Errorf("failed to find user by username %s or email %s", username, email)
		}
		return nil, convertErrorType(err)
	}
	return &user, nil
}

// ExistsConflicting проверяет, не занят ли username или email другим
// пользователем (кроме exceptUsername).
func (u *UserRepo) ExistsConflicting(ctx context.Context, exceptUsername, username, email string) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).Model(&models.User{}).
		Where("username <> ?", exceptUsername).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		u.logger.WithError(err).Errorf("failed to count conflicting users for %s", exceptUsername)
		return false, convertErrorType(err)
	}
	return count > 0, nil
}

// Update сохраняет измененного пользователя. prevUsername нужен только
// реализации in-memory (там ключом выступает username), здесь запись
// адресуется первичным ключом.
func (u *UserRepo) Update(ctx context.Context, _ string, user *models.User) error {
	if err := u.db.WithContext(ctx).Save(user).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			u.logger.WithError(err).Errorf("failed to update user %s", user.Username)
		}
		return convertErrorType(err)
	}
	return nil
}

func (u *UserRepo) DeleteByUsername(ctx context.Context, username string) error {
	res := u.db.WithContext(ctx).Where("username = ?", username).Delete(&models.User{})
	if res.Error != nil {
		u.logger.WithError(res.Error).Errorf("failed to delete user %s", username)
		return convertErrorType(res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
