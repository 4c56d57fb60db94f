package user_test

import (
	"context"
	"errors"
	"testing"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/rbac"
	"hr-backoffice/internal/user"
	usererrors "hr-backoffice/internal/user/errors"

	auditMock "hr-backoffice/internal/audit/mock"
	userMock "hr-backoffice/internal/user/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userServiceDeps struct {
	service  user.Service
	repo     *userMock.MockRepository
	recorder *auditMock.MockRecorder
}

func setupUserServiceTest(t *testing.T) *userServiceDeps {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	recorder := auditMock.NewMockRecorder(ctrl)

	return &userServiceDeps{
		service:  user.NewService(repo, recorder),
		repo:     repo,
		recorder: recorder,
	}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - hashes password and defaults to ACTIVE", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		req := user.CreateUserRequest{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "s3cret-pass",
			Role:     rbac.RoleUser,
		}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, req.Email, u.Email)
				assert.Equal(t, user.StatusActive, u.Status)
				assert.NotEqual(t, req.Password, u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)))
				return nil
			})
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionCreate, "user", gomock.Any(), gomock.Any())

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, req.Email, resp.Email)
		assert.Equal(t, user.StatusActive, resp.Status)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		req := user.CreateUserRequest{
			Email:    "dup@example.com",
			Name:     "Dup",
			Password: "s3cret-pass",
			Role:     rbac.RoleUser,
		}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"})

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("refused when MASTER_DELETE_HASH is not set", func(t *testing.T) {
		t.Setenv("MASTER_DELETE_HASH", "")
		deps := setupUserServiceTest(t)

		err := deps.service.Delete(ctx, targetID.String(), "whatever")

		assert.ErrorIs(t, err, usererrors.ErrDeleteNotConfigured)
	})

	t.Run("rejected on confirmation code mismatch", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("right-code"), bcrypt.MinCost)
		assert.NoError(t, err)
		t.Setenv("MASTER_DELETE_HASH", string(hash))
		deps := setupUserServiceTest(t)

		err = deps.service.Delete(ctx, targetID.String(), "wrong-code")

		assert.ErrorIs(t, err, usererrors.ErrInvalidConfirmationCode)
	})

	t.Run("success with matching confirmation code", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("right-code"), bcrypt.MinCost)
		assert.NoError(t, err)
		t.Setenv("MASTER_DELETE_HASH", string(hash))
		deps := setupUserServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID).
			Return(&user.User{ID: targetID, Email: "bye@example.com"}, nil)
		deps.repo.EXPECT().
			Delete(ctx, targetID).
			Return(nil)
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionDelete, "user", targetID.String(), nil)

		err = deps.service.Delete(ctx, targetID.String(), "right-code")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("right-code"), bcrypt.MinCost)
		assert.NoError(t, err)
		t.Setenv("MASTER_DELETE_HASH", string(hash))
		deps := setupUserServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID).
			Return(nil, gorm.ErrRecordNotFound)

		err = deps.service.Delete(ctx, targetID.String(), "right-code")

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupUserServiceTest(t)

		err := deps.service.Delete(ctx, "not-a-uuid", "code")

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		existing := &user.User{
			ID:     targetID,
			Email:  "ana@example.com",
			Name:   "Ana",
			Role:   rbac.RoleUser,
			Status: user.StatusActive,
		}

		deps.repo.EXPECT().FindByID(ctx, targetID).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, "Ana Maria", u.Name)
				assert.Equal(t, rbac.RoleAdmin, u.Role)
				return nil
			})
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionUpdate, "user", targetID.String(), gomock.Any())

		resp, err := deps.service.Update(ctx, targetID.String(), user.UpdateUserRequest{
			Name:   "Ana Maria",
			Role:   rbac.RoleAdmin,
			Status: user.StatusActive,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ana Maria", resp.Name)
	})

	t.Run("repo failure bubbles up", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		boom := errors.New("connection reset")

		deps.repo.EXPECT().FindByID(ctx, targetID).Return(nil, boom)

		_, err := deps.service.Update(ctx, targetID.String(), user.UpdateUserRequest{
			Name:   "x",
			Role:   rbac.RoleUser,
			Status: user.StatusActive,
		})

		assert.ErrorIs(t, err, boom)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupUserServiceTest(t)

		_, err := deps.service.GetByID(ctx, "42")

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
