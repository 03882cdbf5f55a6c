package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gin-items/dto"
	"gin-items/metrics"
	"gin-items/models"
	"gin-items/repositories"
	"gin-items/security"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IAuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email string, password string) (string, error)
	GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error)
}

type AuthService struct {
	store  repositories.IStore
	hasher *security.PasswordHasher
	tokens *security.TokenManager
	logger *zap.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(store repositories.IStore, hasher *security.PasswordHasher, tokens *security.TokenManager, logger *zap.Logger) IAuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an active, non-superuser account.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*models.User, error) {
	var created *models.User
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		user, err := createUser(repos.Users(), s.hasher, newUser{
			Email:    input.Email,
			Password: input.Password,
			FullName: input.FullName,
			IsActive: true,
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
	s.logger.Info("User registered", zap.String("user_id", created.ID.String()))
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	var foundUser *models.User
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		user, err := repos.Users().FindByEmail(email)
		if err != nil {
			return err
		}
		foundUser = user
		return nil
	})
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return "", fmt.Errorf("find user: %w", err)
	}

	// 存在しないユーザーとパスワード不一致は区別しない
	// 応答時間でも区別できないよう、未登録でもbcryptの比較を行う
	if foundUser == nil {
		s.hasher.Verify(password, s.timingHash())
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginInvalidCredentials).Inc()
		return "", ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, foundUser.HashedPassword) {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginInvalidCredentials).Inc()
		return "", ErrInvalidCredentials
	}
	if !foundUser.IsActive {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginInactive).Inc()
		return "", ErrInactiveUser
	}

	token, err := s.tokens.IssueDefault(foundUser.ID)
	if err != nil {
		return "", err
	}
	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	return token, nil
}

// GetUserFromToken resolves the bearer token to a stored, active user.
func (s *AuthService) GetUserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := s.tokens.Validate(tokenString)
	if err != nil {
		s.logger.Debug("Token rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var user *models.User
	err = s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		found, err := repos.Users().FindByID(userID)
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: subject %s no longer exists", ErrInvalidToken, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("find token subject: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

// timingHash returns a hash at the configured cost that no password matches.
func (s *AuthService) timingHash() string {
	s.dummyOnce.Do(func() {
		hashed, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			s.logger.Warn("Failed to build timing hash", zap.Error(err))
			return
		}
		s.dummyHash = hashed
	})
	return s.dummyHash
}
