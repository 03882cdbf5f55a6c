package services

import (
	"context"
	"errors"
	"fmt"

	"gin-items/dto"
	"gin-items/metrics"
	"gin-items/models"
	"gin-items/repositories"
	"gin-items/security"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IUserService interface {
	FindAll(ctx context.Context, page dto.PageQuery) ([]models.User, int64, error)
	FindById(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Create(ctx context.Context, input dto.CreateUserInput) (*models.User, error)
	Update(ctx context.Context, userID uuid.UUID, input dto.UpdateUserInput) (*models.User, error)
	UpdateMe(ctx context.Context, actor *models.User, input dto.UpdateMeInput) (*models.User, error)
	Delete(ctx context.Context, actor *models.User, userID uuid.UUID) error
	EnsureSuperuser(ctx context.Context, email string, password string) (*models.User, bool, error)
}

type UserService struct {
	store  repositories.IStore
	hasher *security.PasswordHasher
	logger *zap.Logger
}

func NewUserService(store repositories.IStore, hasher *security.PasswordHasher, logger *zap.Logger) IUserService {
	return &UserService{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

type newUser struct {
	Email       string
	Password    string
	FullName    *string
	IsActive    bool
	IsSuperuser bool
}

// createUser hashes the password and stores the user, pre-checking the email.
func createUser(users repositories.IUserRepository, hasher *security.PasswordHasher, in newUser) (*models.User, error) {
	if _, err := users.FindByEmail(in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          in.Email,
		HashedPassword: hashed,
		FullName:       in.FullName,
		IsActive:       in.IsActive,
		IsSuperuser:    in.IsSuperuser,
	}
	if err := users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) FindAll(ctx context.Context, page dto.PageQuery) ([]models.User, int64, error) {
	var (
		users []models.User
		count int64
	)
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		var err error
		if count, err = repos.Users().Count(); err != nil {
			return err
		}
		users, err = repos.Users().FindAll(page.Skip, page.Limit)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, count, nil
}

func (s *UserService) FindById(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user *models.User
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		found, err := repos.Users().FindByID(userID)
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input dto.CreateUserInput) (*models.User, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	var created *models.User
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		user, err := createUser(repos.Users(), s.hasher, newUser{
			Email:       input.Email,
			Password:    input.Password,
			FullName:    input.FullName,
			IsActive:    isActive,
			IsSuperuser: input.IsSuperuser,
		})
		if err != nil {
			return err
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info("User created", zap.String("user_id", created.ID.String()), zap.Bool("is_superuser", created.IsSuperuser))
	return created, nil
}

func (s *UserService) Update(ctx context.Context, userID uuid.UUID, input dto.UpdateUserInput) (*models.User, error) {
	changes := input.Changes()
	if input.Password != nil {
		hashed, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		changes["hashed_password"] = hashed
	}

	var updated *models.User
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		if _, err := repos.Users().FindByID(userID); err != nil {
			return err
		}

		if input.Email != nil {
			existing, err := repos.Users().FindByEmail(*input.Email)
			switch {
			case err == nil && existing.ID != userID:
				return ErrEmailTaken
			case err != nil && !errors.Is(err, repositories.ErrNotFound):
				return err
			}
		}

		user, err := repos.Users().Update(userID, changes)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrUserNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return nil, ErrEmailTaken
	case errors.Is(err, ErrEmailTaken):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// UpdateMe applies a self-service profile change to the caller's own account.
func (s *UserService) UpdateMe(ctx context.Context, actor *models.User, input dto.UpdateMeInput) (*models.User, error) {
	return s.Update(ctx, actor.ID, input.AsUserUpdate())
}

func (s *UserService) Delete(ctx context.Context, actor *models.User, userID uuid.UUID) error {
	if actor.ID == userID {
		return ErrSelfDelete
	}

	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		return repos.Users().Delete(userID)
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info("User deleted", zap.String("user_id", userID.String()), zap.String("by", actor.ID.String()))
	return nil
}

// EnsureSuperuser creates the bootstrap superuser unless the email is already taken.
// The boolean reports whether a new account was created.
func (s *UserService) EnsureSuperuser(ctx context.Context, email string, password string) (*models.User, bool, error) {
	var (
		user    *models.User
		created bool
	)
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		existing, err := repos.Users().FindByEmail(email)
		if err == nil {
			user = existing
			return nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		user, err = createUser(repos.Users(), s.hasher, newUser{
			Email:       email,
			Password:    password,
			IsActive:    true,
			IsSuperuser: true,
		})
		created = err == nil
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("ensure superuser: %w", err)
	}
	return user, created, nil
}
