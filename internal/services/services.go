package services

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/linkward/internal/db"
	"github.com/fsdevblog/linkward/internal/repositories/memstore"
	"github.com/fsdevblog/linkward/internal/repositories/sql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	UserService *UserService
	LinkService *LinkService
}

func Factory(conn any, sType ServiceType, logger *logrus.Logger) (*Services, error) {
	switch sType {
	case ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, logger), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return getInMemoryServices(store), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, logger *logrus.Logger) *Services {
	userRepo := sql.NewUserRepo(conn, logger)
	linkRepo := sql.NewLinkRepo(conn, logger)
	return &Services{
		UserService: NewUserService(userRepo, linkRepo, NewBcryptHasher()),
		LinkService: NewLinkService(linkRepo),
	}
}

func getInMemoryServices(store *db.MemoryStorage) *Services {
	userRepo := memstore.NewUserRepo(store)
	linkRepo := memstore.NewLinkRepo(store)
	return &Services{
		UserService: NewUserService(userRepo, linkRepo, NewBcryptHasher()),
		LinkService: NewLinkService(linkRepo),
	}
}
