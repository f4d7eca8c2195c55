package smocks

import (
	"context"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/services"
	"github.com/stretchr/testify/mock"
)

type LinkMock struct {
	mock.Mock
}

func (l *LinkMock) Create(ctx context.Context, params services.CreateLinkParams) (*models.Link, error) {
	args := l.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) List(ctx context.Context, owner string) ([]models.Link, error) {
	args := l.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) GetByShortLink(ctx context.Context, shortLink string) (*models.Link, error) {
	args := l.Called(ctx, shortLink)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) GetByOwnerShortLink(ctx context.Context, owner, shortLink string) (*models.Link, error) {
	args := l.Called(ctx, owner, shortLink)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) Update(
	ctx context.Context,
	owner, shortLink string,
	upd services.LinkUpdate,
) (*models.Link, error) {
	args := l.Called(ctx, owner, shortLink, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Link), args.Error(1) //nolint:wrapcheck,errcheck
}

func (l *LinkMock) Delete(ctx context.Context, owner, shortLink string) error {
	args := l.Called(ctx, owner, shortLink)
	return args.Error(0) //nolint:wrapcheck
}

func (l *LinkMock) AppendClick(
	ctx context.Context,
	shortLink string,
	click models.Click,
) ([]models.Click, error) {
	args := l.Called(ctx, shortLink, click)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.Click), args.Error(1) //nolint:wrapcheck,errcheck
}
