package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/parkease/parkease-backend/internal/domain"
	userRepo "github.com/parkease/parkease-backend/internal/infra/storage/user"
	"github.com/parkease/parkease-backend/internal/service/auth/models"
)

const minPasswordLength = 6

// Service регистрация и вход пользователей. Внешняя по отношению к движку
// бронирований: движок получает имя водителя обычной строкой.
type Service struct {
	userRepo UserRepository
	tokens   *TokenManager
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, tokens *TokenManager, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового водителя и выпускает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Role:         domain.RoleDriver,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailExists) {
			s.logger.Warn("Register: email=%q already registered", req.Email)
			return nil, ErrEmailExists
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.CreateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: user id=%d email=%q registered", user.ID, user.Email)
	return &models.AuthResponse{
		Token: token,
		Role:  string(user.Role),
		Name:  user.Name,
	}, nil
}

// Login проверяет учетные данные и выпускает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%q", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%q", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: user id=%d email=%q logged in", user.ID, user.Email)
	return &models.AuthResponse{
		Token: token,
		Role:  string(user.Role),
		Name:  user.Name,
	}, nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
