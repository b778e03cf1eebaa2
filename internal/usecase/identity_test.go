package usecase_test

import (
	"context"
	"testing"

	"booknest/internal/auth"
	"booknest/internal/entity"
	"booknest/internal/usecase"
	"booknest/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityUsecase(ctrl *gomock.Controller) (*usecase.IdentityUsecase, *mocks.MockUserRepository, *mocks.MockShelfRepository) {
	users := mocks.NewMockUserRepository(ctrl)
	shelves := mocks.NewMockShelfRepository(ctrl)
	return usecase.NewIdentityUsecase(users, shelves), users, shelves
}

func TestIdentityUsecase_Register(t *testing.T) {
	t.Run("creates a reader and seeds default shelves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, shelves := newIdentityUsecase(ctrl)
		users.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(entity.User{}, usecase.ErrNotFound)
		users.EXPECT().GetByUsername(gomock.Any(), "newreader").Return(entity.User{}, usecase.ErrNotFound)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user *entity.User) error {
				assert.Equal(t, entity.RoleReader, user.Role)
				assert.True(t, user.IsActive)
				assert.NotEqual(t, "Sup3rSecret!", user.Password, "password must be stored hashed")
				assert.True(t, auth.VerifyPassword(user.Password, "Sup3rSecret!"))
				user.ID = testUserID
				return nil
			})
		shelves.EXPECT().CreateDefaults(gomock.Any(), testUserID).Return(nil)

		user, err := u.Register(context.Background(), usecase.RegisterParams{
			Email:    "new@example.com",
			Username: "newreader",
			Password: "Sup3rSecret!",
		})
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
			Return(entity.User{ID: "someone"}, nil)

		_, err := u.Register(context.Background(), usecase.RegisterParams{
			Email:    "taken@example.com",
			Username: "whoever",
			Password: "Sup3rSecret!",
		})
		assert.ErrorIs(t, err, usecase.ErrConflict)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(entity.User{}, usecase.ErrNotFound)
		users.EXPECT().GetByUsername(gomock.Any(), "taken").Return(entity.User{ID: "someone"}, nil)

		_, err := u.Register(context.Background(), usecase.RegisterParams{
			Email:    "new@example.com",
			Username: "taken",
			Password: "Sup3rSecret!",
		})
		assert.ErrorIs(t, err, usecase.ErrConflict)
	})
}

func TestIdentityUsecase_Authenticate(t *testing.T) {
	hashed, err := auth.HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	active := entity.User{ID: testUserID, Email: "reader@example.com", Password: hashed, IsActive: true}

	t.Run("valid credentials stamp last login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByEmail(gomock.Any(), "reader@example.com").Return(active, nil)
		users.EXPECT().UpdateLastLogin(gomock.Any(), testUserID).Return(nil)

		user, err := u.Authenticate(context.Background(), "reader@example.com", "Sup3rSecret!")
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByEmail(gomock.Any(), "reader@example.com").Return(active, nil)

		_, err := u.Authenticate(context.Background(), "reader@example.com", "wrong")
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inactive := active
		inactive.IsActive = false

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByEmail(gomock.Any(), "reader@example.com").Return(inactive, nil)

		_, err := u.Authenticate(context.Background(), "reader@example.com", "Sup3rSecret!")
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})
}

func TestIdentityUsecase_UpdateProfile(t *testing.T) {
	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByID(gomock.Any(), testUserID).
			Return(entity.User{ID: testUserID, Email: "reader@example.com", Username: "reader", FirstName: "Old"}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		first := "New"
		user, err := u.UpdateProfile(context.Background(), testUserID, usecase.UpdateProfileParams{
			FirstName: &first,
		})
		require.NoError(t, err)
		assert.Equal(t, "New", user.FirstName)
		assert.Equal(t, "reader@example.com", user.Email)
		assert.Equal(t, "reader", user.Username)
	})

	t.Run("changing email to a taken one conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByID(gomock.Any(), testUserID).
			Return(entity.User{ID: testUserID, Email: "reader@example.com"}, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
			Return(entity.User{ID: "someone"}, nil)

		email := "taken@example.com"
		_, err := u.UpdateProfile(context.Background(), testUserID, usecase.UpdateProfileParams{
			Email: &email,
		})
		assert.ErrorIs(t, err, usecase.ErrConflict)
	})

	t.Run("keeping own email skips the check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByID(gomock.Any(), testUserID).
			Return(entity.User{ID: testUserID, Email: "reader@example.com"}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		email := "reader@example.com"
		_, err := u.UpdateProfile(context.Background(), testUserID, usecase.UpdateProfileParams{
			Email: &email,
		})
		assert.NoError(t, err)
	})
}

func TestIdentityUsecase_ChangePassword(t *testing.T) {
	hashed, err := auth.HashPassword("OldSecret1!")
	require.NoError(t, err)

	t.Run("wrong current password is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByID(gomock.Any(), testUserID).
			Return(entity.User{ID: testUserID, Password: hashed}, nil)

		err := u.ChangePassword(context.Background(), testUserID, "nope", "NewSecret1!")
		assert.ErrorIs(t, err, usecase.ErrForbidden)
	})

	t.Run("stores the new hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, users, _ := newIdentityUsecase(ctrl)
		users.EXPECT().GetByID(gomock.Any(), testUserID).
			Return(entity.User{ID: testUserID, Password: hashed}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user *entity.User) error {
				assert.True(t, auth.VerifyPassword(user.Password, "NewSecret1!"))
				return nil
			})

		assert.NoError(t, u.ChangePassword(context.Background(), testUserID, "OldSecret1!", "NewSecret1!"))
	})
}
