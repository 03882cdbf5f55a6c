package services

import (
	"context"
	"errors"
	"fmt"

	"gin-items/dto"
	"gin-items/models"
	"gin-items/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IItemService interface {
	FindAll(ctx context.Context, actor *models.User, page dto.PageQuery) ([]models.Item, int64, error)
	FindById(ctx context.Context, actor *models.User, itemID uuid.UUID) (*models.Item, error)
	Create(ctx context.Context, actor *models.User, createItemInput dto.CreateItemInput) (*models.Item, error)
	Update(ctx context.Context, actor *models.User, itemID uuid.UUID, updateItemInput dto.UpdateItemInput) (*models.Item, error)
	Delete(ctx context.Context, actor *models.User, itemID uuid.UUID) (*models.Item, error)
}

type ItemService struct {
	store  repositories.IStore
	logger *zap.Logger
}

func NewItemService(store repositories.IStore, logger *zap.Logger) IItemService {
	return &ItemService{store: store, logger: logger}
}

// findAccessible loads the item and applies the ownership check.
// 存在しない場合と権限がない場合はどちらもErrItemNotFound
func findAccessible(items repositories.IItemRepository, actor *models.User, itemID uuid.UUID) (*models.Item, error) {
	item, err := items.FindById(itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if !CanAccess(actor, item) {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *ItemService) FindAll(ctx context.Context, actor *models.User, page dto.PageQuery) ([]models.Item, int64, error) {
	var ownerID *uuid.UUID
	if !actor.IsSuperuser {
		ownerID = &actor.ID
	}

	var (
		items []models.Item
		count int64
	)
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		var err error
		if count, err = repos.Items().Count(ownerID); err != nil {
			return err
		}
		items, err = repos.Items().FindAll(ownerID, page.Skip, page.Limit)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, count, nil
}

func (s *ItemService) FindById(ctx context.Context, actor *models.User, itemID uuid.UUID) (*models.Item, error) {
	var item *models.Item
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		found, err := findAccessible(repos.Items(), actor, itemID)
		if err != nil {
			return err
		}
		item = found
		return nil
	})
	if err != nil {
		return nil, wrapItemError("find item", err)
	}
	return item, nil
}

func (s *ItemService) Create(ctx context.Context, actor *models.User, createItemInput dto.CreateItemInput) (*models.Item, error) {
	newItem := &models.Item{
		Title:       createItemInput.Title,
		Description: createItemInput.Description,
		OwnerID:     actor.ID,
	}
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		return repos.Items().Create(newItem)
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.logger.Debug("Item created", zap.String("item_id", newItem.ID.String()), zap.String("owner_id", actor.ID.String()))
	return newItem, nil
}

// Update applies only the fields present in updateItemInput.
func (s *ItemService) Update(ctx context.Context, actor *models.User, itemID uuid.UUID, updateItemInput dto.UpdateItemInput) (*models.Item, error) {
	var updated *models.Item
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		target, err := findAccessible(repos.Items(), actor, itemID)
		if err != nil {
			return err
		}
		changes := updateItemInput.Changes()
		if len(changes) == 0 {
			updated = target
			return nil
		}
		updated, err = repos.Items().Update(target.ID, changes)
		return err
	})
	if err != nil {
		return nil, wrapItemError("update item", err)
	}
	return updated, nil
}

// Delete removes the item and returns it as it was before removal.
func (s *ItemService) Delete(ctx context.Context, actor *models.User, itemID uuid.UUID) (*models.Item, error) {
	var deleted *models.Item
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		target, err := findAccessible(repos.Items(), actor, itemID)
		if err != nil {
			return err
		}
		if err := repos.Items().Delete(target.ID); err != nil {
			return err
		}
		deleted = target
		return nil
	})
	if err != nil {
		return nil, wrapItemError("delete item", err)
	}
	return deleted, nil
}

func wrapItemError(op string, err error) error {
	if errors.Is(err, ErrItemNotFound) || errors.Is(err, repositories.ErrNotFound) {
		return ErrItemNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
