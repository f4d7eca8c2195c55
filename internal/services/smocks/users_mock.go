package smocks

import (
	"context"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/services"
	"github.com/stretchr/testify/mock"
)

type UserMock struct {
	mock.Mock
}

func (u *UserMock) Register(ctx context.Context, params services.RegisterParams) (*models.User, error) {
	args := u.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	args := u.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := u.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) Update(ctx context.Context, username string, upd services.UserUpdate) (*models.User, error) {
	args := u.Called(ctx, username, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) Delete(ctx context.Context, username string) error {
	args := u.Called(ctx, username)
	return args.Error(0) //nolint:wrapcheck
}
