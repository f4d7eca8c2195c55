package db

import (
	"errors"
	"fmt"
)

type StorageType string

const (
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeInMemory StorageType = "inMemory"
)

type FactoryConfig struct {
	StorageType  StorageType
	SQLiteDBPath *string
}

func NewConnectionFactory(config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypeSQLite:
		if config.SQLiteDBPath == nil {
			return nil, errors.New("sqlite db path is empty")
		}
		conn, err := NewSQLite(*config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite connection: %w", err)
		}
		return conn, nil
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
