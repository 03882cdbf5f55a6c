package repositories

import (
	"gin-items/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IUserRepository interface {
	Create(user *models.User) error
	FindByID(userID uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll(skip, limit int) ([]models.User, error)
	Count() (int64, error)
	Update(userID uuid.UUID, updates map[string]any) (*models.User, error)
	Delete(userID uuid.UUID) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return translate(r.db.Create(user).Error)
}

func (r *UserRepository) FindByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(skip, limit int) ([]models.User, error) {
	users := []models.User{}
	result := r.db.Order("created_at ASC").Order("id ASC").Offset(skip).Limit(limit).Find(&users)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return users, nil
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *UserRepository) Update(userID uuid.UUID, updates map[string]any) (*models.User, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(userID)
}

// Delete removes the user together with every item they own.
func (r *UserRepository) Delete(userID uuid.UUID) error {
	if err := r.db.Where("owner_id = ?", userID).Delete(&models.Item{}).Error; err != nil {
		return translate(err)
	}
	result := r.db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
