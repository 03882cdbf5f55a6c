package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repositories vends repositories bound to one transaction.
type Repositories interface {
	Users() IUserRepository
	Items() IItemRepository
}

type IStore interface {
	// Transaction runs fn inside a single database transaction bound to ctx.
	// It commits when fn returns nil and rolls back on error or panic.
	Transaction(ctx context.Context, fn func(repos Repositories) error) error
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) IStore {
	return &Store{db: db}
}

func (s *Store) Transaction(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}

type txRepositories struct {
	tx *gorm.DB
}

func (r *txRepositories) Users() IUserRepository {
	return NewUserRepository(r.tx)
}

func (r *txRepositories) Items() IItemRepository {
	return NewItemRepository(r.tx)
}
