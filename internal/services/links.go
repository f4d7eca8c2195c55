package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/repositories"

	"github.com/pkg/errors"
)

// maxShortCodeAttempts лимит попыток генерации короткого кода.
// Уникальный индекс в хранилище остается последней линией защиты от гонки
// двух конкурентных созданий, цикл лишь перегенерирует код при дубликате.
const maxShortCodeAttempts = 64

// CreateLinkParams параметры создания ссылки.
type CreateLinkParams struct {
	OriginalLink string
	Remarks      string
	ExpiryDate   *time.Time
	Owner        string
}

// LinkUpdate частичное обновление ссылки. Явный allow-list изменяемых полей:
// идентификаторы и массив кликов через общий PUT не редактируются.
type LinkUpdate struct {
	OriginalLink *string
	Remarks      *string
	ExpiryDate   *time.Time
}

// LinkService работает с хранилищем в контексте коллекции ссылок.
type LinkService struct {
	linkRepo LinkRepository
}

func NewLinkService(linkRepo LinkRepository) *LinkService {
	return &LinkService{linkRepo: linkRepo}
}

// Create генерирует уникальный короткий код и сохраняет ссылку.
// При коллизии кода вставка повторяется с новым кодом: метка времени и номер
// попытки меняют вход дайджеста.
func (l *LinkService) Create(ctx context.Context, params CreateLinkParams) (*models.Link, error) {
	for attempt := 0; attempt < maxShortCodeAttempts; attempt++ {
		link := models.Link{
			OriginalLink: params.OriginalLink,
			ShortLink:    shortCode(params.Owner, params.OriginalLink, time.Now(), attempt),
			Remarks:      params.Remarks,
			ExpiryDate:   params.ExpiryDate,
			Owner:        params.Owner,
			Clicks:       []models.Click{},
		}
		if createErr := l.linkRepo.Create(ctx, &link); createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				continue
			}
			return nil, ErrUnknown
		}
		return &link, nil
	}
	return nil, errors.Wrapf(ErrShortCodeExhausted, "short code generation for owner %s", params.Owner)
}

// List возвращает ссылки владельца, либо все ссылки если owner пуст.
func (l *LinkService) List(ctx context.Context, owner string) ([]models.Link, error) {
	var links []models.Link
	var err error
	if owner == "" {
		links, err = l.linkRepo.GetAll(ctx)
	} else {
		links, err = l.linkRepo.GetAllByOwner(ctx, owner)
	}
	if err != nil {
		return nil, ErrUnknown
	}
	return links, nil
}

func (l *LinkService) GetByShortLink(ctx context.Context, shortLink string) (*models.Link, error) {
	link, err := l.linkRepo.GetByShortLink(ctx, shortLink)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "short link %s not found", shortLink)
		}
		return nil, ErrUnknown
	}
	return link, nil
}

func (l *LinkService) GetByOwnerShortLink(ctx context.Context, owner, shortLink string) (*models.Link, error) {
	link, err := l.linkRepo.GetByOwnerShortLink(ctx, owner, shortLink)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "link %s of owner %s not found", shortLink, owner)
		}
		return nil, ErrUnknown
	}
	return link, nil
}

// Update применяет частичное обновление к ссылке (owner, shortLink).
func (l *LinkService) Update(ctx context.Context, owner, shortLink string, upd LinkUpdate) (*models.Link, error) {
	link, getErr := l.GetByOwnerShortLink(ctx, owner, shortLink)
	if getErr != nil {
		return nil, getErr
	}

	if upd.OriginalLink != nil {
		link.OriginalLink = *upd.OriginalLink
	}
	if upd.Remarks != nil {
		link.Remarks = *upd.Remarks
	}
	if upd.ExpiryDate != nil {
		link.ExpiryDate = upd.ExpiryDate
	}

	if err := l.linkRepo.Update(ctx, link); err != nil {
		return nil, ErrUnknown
	}
	return link, nil
}

func (l *LinkService) Delete(ctx context.Context, owner, shortLink string) error {
	if err := l.linkRepo.DeleteByOwnerShortLink(ctx, owner, shortLink); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errors.Wrapf(ErrRecordNotFound, "link %s of owner %s not found", shortLink, owner)
		}
		return ErrUnknown
	}
	return nil
}

// AppendClick дописывает один клик в конец последовательности ссылки и
// возвращает полную последовательность после записи.
func (l *LinkService) AppendClick(ctx context.Context, shortLink string, click models.Click) ([]models.Click, error) {
	link, getErr := l.GetByShortLink(ctx, shortLink)
	if getErr != nil {
		return nil, getErr
	}

	if click.ClickTime.IsZero() {
		click.ClickTime = time.Now().UTC()
	}
	link.Clicks = append(link.Clicks, click)

	if err := l.linkRepo.Update(ctx, link); err != nil {
		return nil, ErrUnknown
	}
	return link.Clicks, nil
}

// shortCode вычисляет короткий код ссылки: первые 8 hex-символов sha256 от
// склейки владельца, адреса и метки времени в миллисекундах. Номер попытки
// подмешивается на случай коллизии в пределах одной миллисекунды.
func shortCode(owner, originalLink string, now time.Time, attempt int) string {
	payload := owner + originalLink + strconv.FormatInt(now.UnixMilli(), 10)
	b := append([]byte(payload), byte(attempt))

	hash := sha256.Sum256(b)
	return hex.EncodeToString(hash[:])[:models.ShortLinkLength]
}
