package db

import (
	"github.com/fsdevblog/linkward/internal/db/memory"
)

// MemoryStorage in-memory хранилище с двумя коллекциями документов,
// по аналогии с коллекциями документной базы.
type MemoryStorage struct {
	Users *memory.MStorage
	Links *memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		Users: memory.NewMemStorage(),
		Links: memory.NewMemStorage(),
	}
}
