package repositories

import (
	"gin-items/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IItemRepository interface {
	FindAll(ownerID *uuid.UUID, skip, limit int) ([]models.Item, error)
	Count(ownerID *uuid.UUID) (int64, error)
	FindById(itemID uuid.UUID) (*models.Item, error)
	Create(newItem *models.Item) error
	Update(itemID uuid.UUID, updates map[string]any) (*models.Item, error)
	Delete(itemID uuid.UUID) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

// scoped limits the query to one owner; nil means every owner.
func (r *ItemRepository) scoped(ownerID *uuid.UUID) *gorm.DB {
	query := r.db.Model(&models.Item{})
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}
	return query
}

func (r *ItemRepository) FindAll(ownerID *uuid.UUID, skip, limit int) ([]models.Item, error) {
	items := []models.Item{}
	result := r.scoped(ownerID).Order("created_at ASC").Order("id ASC").Offset(skip).Limit(limit).Find(&items)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return items, nil
}

func (r *ItemRepository) Count(ownerID *uuid.UUID) (int64, error) {
	var count int64
	if err := r.scoped(ownerID).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *ItemRepository) FindById(itemID uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", itemID).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *ItemRepository) Create(newItem *models.Item) error {
	if newItem.ID == uuid.Nil {
		newItem.ID = uuid.New()
	}
	return translate(r.db.Create(newItem).Error)
}

func (r *ItemRepository) Update(itemID uuid.UUID, updates map[string]any) (*models.Item, error) {
	result := r.db.Model(&models.Item{}).
		Where("id = ?", itemID).
		Updates(updates)

	if result.Error != nil {
		return nil, translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.FindById(itemID)
}

func (r *ItemRepository) Delete(itemID uuid.UUID) error {
	result := r.db.Delete(&models.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
