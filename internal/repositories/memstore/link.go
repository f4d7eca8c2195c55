package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsdevblog/linkward/internal/db"
	"github.com/fsdevblog/linkward/internal/db/memory"
	"github.com/fsdevblog/linkward/internal/models"
)

// LinkRepo репозиторий ссылок поверх in-memory хранилища.
// Ключом документа выступает short_link.
type LinkRepo struct {
	s  *db.MemoryStorage
	mu sync.Mutex
}

func NewLinkRepo(store *db.MemoryStorage) *LinkRepo {
	return &LinkRepo{
		s: store,
	}
}

// Create создает запись ссылки.
//
// Параметры:
//   - ctx: контекст выполнения
//   - link: данные ссылки
//
// Возвращает:
//   - error: ошибка создания (преобразованная через convertErrorType)
func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if err := memory.Set[models.Link](ctx, link.ShortLink, link, l.s.Links); err != nil {
		return fmt.Errorf("failed to create link %s: %w", link.ShortLink, convertErrorType(err))
	}
	return nil
}

// GetByShortLink получает ссылку по короткому идентификатору.
//
// Параметры:
//   - ctx: контекст выполнения
//   - shortLink: короткий идентификатор
//
// Возвращает:
//   - *models.Link: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (l *LinkRepo) GetByShortLink(ctx context.Context, shortLink string) (*models.Link, error) {
	link, err := memory.Get[models.Link](ctx, shortLink, l.s.Links)
	if err != nil {
		return nil, fmt.Errorf("failed to get link by short link %s: %w", shortLink, convertErrorType(err))
	}
	return link, nil
}

// GetByOwnerShortLink получает ссылку по паре (owner, short_link).
//
// Параметры:
//   - ctx: контекст выполнения
//   - owner: username владельца
//   - shortLink: короткий идентификатор
//
// Возвращает:
//   - *models.Link: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (l *LinkRepo) GetByOwnerShortLink(ctx context.Context, owner, shortLink string) (*models.Link, error) {
	link, err := memory.Get[models.Link](ctx, shortLink, l.s.Links)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get link by owner %s and short link %s: %w",
			owner, shortLink, convertErrorType(err),
		)
	}
	if link.Owner != owner {
		return nil, convertErrorType(memory.ErrNotFound)
	}
	return link, nil
}

// GetAll получает все сохраненные ссылки.
//
// Параметры:
//   - ctx: контекст выполнения
//
// Возвращает:
//   - []models.Link: все записи
//   - error: ошибка получения (преобразованная через convertErrorType)
func (l *LinkRepo) GetAll(ctx context.Context) ([]models.Link, error) {
	links, err := memory.GetAll[models.Link](ctx, l.s.Links)
	if err != nil {
		return nil, fmt.Errorf("failed to get all links: %w", convertErrorType(err))
	}
	return links, nil
}

// GetAllByOwner получает все ссылки указанного владельца.
//
// Параметры:
//   - ctx: контекст выполнения
//   - owner: username владельца
//
// Возвращает:
//   - []models.Link: найденные записи
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (l *LinkRepo) GetAllByOwner(ctx context.Context, owner string) ([]models.Link, error) {
	links, err := memory.FilterAll[models.Link](ctx, l.s.Links, func(val models.Link) bool {
		return val.Owner == owner
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get links by owner %s: %w", owner, convertErrorType(err))
	}
	return links, nil
}

// Update сохраняет измененную ссылку поверх существующего документа.
//
// Параметры:
//   - ctx: контекст выполнения
//   - link: данные ссылки
//
// Возвращает:
//   - error: ошибка сохранения (преобразованная через convertErrorType)
func (l *LinkRepo) Update(ctx context.Context, link *models.Link) error {
	if err := memory.Set[models.Link](ctx, link.ShortLink, link, l.s.Links, memory.WithOverwrite()); err != nil {
		return fmt.Errorf("failed to update link %s: %w", link.ShortLink, convertErrorType(err))
	}
	return nil
}

// RenameOwner переписывает owner на всех ссылках oldOwner. Каскад при
// переименовании пользователя.
//
// Параметры:
//   - ctx: контекст выполнения
//   - oldOwner: прежний username владельца
//   - newOwner: новый username владельца
//
// Возвращает:
//   - error: ошибка сохранения (преобразованная через convertErrorType)
func (l *LinkRepo) RenameOwner(ctx context.Context, oldOwner, newOwner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	links, err := memory.FilterAll[models.Link](ctx, l.s.Links, func(val models.Link) bool {
		return val.Owner == oldOwner
	})
	if err != nil {
		return fmt.Errorf("failed to collect links of owner %s: %w", oldOwner, convertErrorType(err))
	}
	for i := range links {
		links[i].Owner = newOwner
		setErr := memory.Set[models.Link](ctx, links[i].ShortLink, &links[i], l.s.Links, memory.WithOverwrite())
		if setErr != nil {
			return fmt.Errorf(
				"failed to rename owner on link %s: %w",
				links[i].ShortLink, convertErrorType(setErr),
			)
		}
	}
	return nil
}

// DeleteByOwnerShortLink удаляет ссылку по паре (owner, short_link).
//
// Параметры:
//   - ctx: контекст выполнения
//   - owner: username владельца
//   - shortLink: короткий идентификатор
//
// Возвращает:
//   - error: ошибка удаления (преобразованная через convertErrorType)
func (l *LinkRepo) DeleteByOwnerShortLink(ctx context.Context, owner, shortLink string) error {
	if _, err := l.GetByOwnerShortLink(ctx, owner, shortLink); err != nil {
		return err
	}
	if err := memory.Delete(ctx, shortLink, l.s.Links); err != nil {
		return fmt.Errorf("failed to delete link %s: %w", shortLink, convertErrorType(err))
	}
	return nil
}

// DeleteByOwner удаляет все ссылки владельца. Каскад при удалении аккаунта.
//
// Параметры:
//   - ctx: контекст выполнения
//   - owner: username владельца
//
// Возвращает:
//   - error: ошибка удаления (преобразованная через convertErrorType)
func (l *LinkRepo) DeleteByOwner(ctx context.Context, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	links, err := memory.FilterAll[models.Link](ctx, l.s.Links, func(val models.Link) bool {
		return val.Owner == owner
	})
	if err != nil {
		return fmt.Errorf("failed to collect links of owner %s: %w", owner, convertErrorType(err))
	}
	for i := range links {
		if delErr := memory.Delete(ctx, links[i].ShortLink, l.s.Links); delErr != nil {
			return fmt.Errorf(
				"failed to delete link %s of owner %s: %w",
				links[i].ShortLink, owner, convertErrorType(delErr),
			)
		}
	}
	return nil
}
