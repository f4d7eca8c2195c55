package sql

import (
	"context"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LinkRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewLinkRepo(db *gorm.DB, logger *logrus.Logger) *LinkRepo {
	return &LinkRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/link"),
	}
}

func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if err := l.db.WithContext(ctx).Create(link).Error; err != nil {
		// дубликат short_link ожидаем в цикле генерации, не шумим в лог
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			l.logger.WithError(err).Errorf("failed to create link %s", link.ShortLink)
		}
		return convertErrorType(err)
	}
	return nil
}

func (l *LinkRepo) GetByShortLink(ctx context.Context, shortLink string) (*models.Link, error) {
	var link models.Link
	if err := l.db.WithContext(ctx).Where("short_link = ?", shortLink).First(&link).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			l.logger.WithError(err).Errorf("failed to get link by short link %s", shortLink)
		}
		return nil, convertErrorType(err)
	}
	return &link, nil
}

func (l *LinkRepo) GetByOwnerShortLink(ctx context.Context, owner, shortLink string) (*models.Link, error) {
	var link models.Link
	err := l.db.WithContext(ctx).
		Where("owner = ? AND short_link = ?", owner, shortLink).
		First(&link).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			l.logger.WithError(err).Errorf("failed to get link by owner %s and short link %s", owner, shortLink)
		}
		return nil, convertErrorType(err)
	}
	return &link, nil
}

// GetAll возвращает все записи в бд. Сразу пачкой.
func (l *LinkRepo) GetAll(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := l.db.WithContext(ctx).Find(&links).Error; err != nil {
		l.logger.WithError(err).Error("failed to get all links")
		return nil, convertErrorType(err)
	}
	return links, nil
}

func (l *LinkRepo) GetAllByOwner(ctx context.Context, owner string) ([]models.Link, error) {
	var links []models.Link
	if err := l.db.WithContext(ctx).Where("owner = ?", owner).Find(&links).Error; err != nil {
		l.logger.WithError(err).Errorf("failed to get links by owner %s", owner)
		return nil, convertErrorType(err)
	}
	return links, nil
}

func (l *LinkRepo) Update(ctx context.Context, link *models.Link) error {
	if err := l.db.WithContext(ctx).Save(link).Error; err != nil {
		l.logger.WithError(err).Errorf("failed to update link %s", link.ShortLink)
		return convertErrorType(err)
	}
	return nil
}

// RenameOwner переписывает owner на всех ссылках oldOwner. Каскад при
// переименовании пользователя.
func (l *LinkRepo) RenameOwner(ctx context.Context, oldOwner, newOwner string) error {
	err := l.db.WithContext(ctx).Model(&models.Link{}).
		Where("owner = ?", oldOwner).
		Update("owner", newOwner).Error
	if err != nil {
		l.logger.WithError(err).Errorf("failed to rename owner %s to %s", oldOwner, newOwner)
		return convertErrorType(err)
	}
	return nil
}

func (l *LinkRepo) DeleteByOwnerShortLink(ctx context.Context, owner, shortLink string) error {
	res := l.db.WithContext(ctx).
		Where("owner = ? AND short_link = ?", owner, shortLink).
		Delete(&models.Link{})
	if res.Error != nil {
		l.logger.WithError(res.Error).Errorf("failed to delete link %s of owner %s", shortLink, owner)
		return convertErrorType(res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteByOwner удаляет все ссылки владельца. Каскад при удалении аккаунта:
// отсутствие ссылок ошибкой не считается.
func (l *LinkRepo) DeleteByOwner(ctx context.Context, owner string) error {
	res := l.db.WithContext(ctx).Where("owner = ?", owner).Delete(&models.Link{})
	if res.Error != nil {
		l.logger.WithError(res.Error).Errorf("failed to delete links of owner %s", owner)
		return convertErrorType(res.Error)
	}
	return nil
}
