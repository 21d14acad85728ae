package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/service/ports/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "+79991234567",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.True(t, user.Active)
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"missing name", domain.CreateUserInput{Email: "a@b.com", Phone: "+79991234567"}},
		{"missing email", domain.CreateUserInput{Name: "Alice", Phone: "+79991234567"}},
		{"bad phone", domain.CreateUserInput{Name: "Alice", Email: "a@b.com", Phone: "not-a-phone"}},
		{"phone too short", domain.CreateUserInput{Name: "Alice", Email: "a@b.com", Phone: "+123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepo(t)
			svc := NewUserService(repo)

			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailExists)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Alice",
		Email: "taken@example.com",
		Phone: "+79991234567",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestUserService_Update_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	existing := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Phone: "+79991234567", Active: true}

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, existing).Return(nil)

	user, err := svc.Update(context.Background(), "u1", domain.UpdateUserInput{
		Name:  "Alice B",
		Phone: "+79997654321",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice B", user.Name)
	assert.Equal(t, "+79997654321", user.Phone)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateUserInput{
		Name:  "Alice",
		Phone: "+79991234567",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_ActivateDeactivate(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().SetActive(mock.Anything, "u1", true).Return(nil)
	repo.EXPECT().SetActive(mock.Anything, "u1", false).Return(nil)

	require.NoError(t, svc.Activate(context.Background(), "u1"))
	require.NoError(t, svc.Deactivate(context.Background(), "u1"))
}

func TestUserService_Deactivate_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().SetActive(mock.Anything, "missing", false).Return(domain.ErrUserNotFound)

	err := svc.Deactivate(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{{ID: "u1", Name: "Alice"}}
	repo.EXPECT().List(mock.Anything, true).Return(users, nil)

	result, err := svc.List(context.Background(), true)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
