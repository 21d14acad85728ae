package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/service/ports"
	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !phonePattern.MatchString(input.Phone) {
		return nil, fmt.Errorf("%w: phone number is not valid", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Active:         true,
		TelegramChatID: input.TelegramChatID,
		RegisteredAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *UserService) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !phonePattern.MatchString(input.Phone) {
		return nil, fmt.Errorf("%w: phone number is not valid", domain.ErrValidation)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.Name = input.Name
	user.Phone = input.Phone

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (s *UserService) Activate(ctx context.Context, id string) error {
	if err := s.repo.SetActive(ctx, id, true); err != nil {
		return fmt.Errorf("activate user: %w", err)
	}
	return nil
}

func (s *UserService) Deactivate(ctx context.Context, id string) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
