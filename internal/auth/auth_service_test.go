package auth_test

import (
	"context"
	"testing"
	"time"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/auth"
	autherrors "hr-backoffice/internal/auth/errors"
	"hr-backoffice/internal/rbac"
	"hr-backoffice/internal/user"

	auditMock "hr-backoffice/internal/audit/mock"
	userMock "hr-backoffice/internal/user/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authServiceDeps struct {
	service   auth.Service
	users     *userMock.MockRepository
	recorder  *auditMock.MockRecorder
	redisMock redismock.ClientMock
}

func setupAuthServiceTest(t *testing.T) *authServiceDeps {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	users := userMock.NewMockRepository(ctrl)
	recorder := auditMock.NewMockRecorder(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &authServiceDeps{
		service:   auth.NewService(users, rdb, recorder),
		users:     users,
		recorder:  recorder,
		redisMock: redisMock,
	}
}

func activeUser(t *testing.T, password string) *user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:       uuid.New(),
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: string(hash),
		Role:     rbac.RoleUser,
		Status:   user.StatusActive,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues signed tokens with identity claims", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := activeUser(t, "s3cret-pass")

		deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)

		access, refresh, resp, err := deps.service.Login(ctx, u.Email, "s3cret-pass")

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, u.Email, resp.Email)

		token, err := jwt.Parse(access, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims, ok := token.Claims.(jwt.MapClaims)
		assert.True(t, ok)
		assert.Equal(t, u.ID.String(), claims["user_id"])
		assert.Equal(t, rbac.RoleUser, claims["role"])
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := activeUser(t, "s3cret-pass")

		deps.users.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)
		deps.users.EXPECT().
			FindByEmail(ctx, u.Email).
			Return(u, nil)

		_, _, _, errUnknown := deps.service.Login(ctx, "ghost@example.com", "whatever")
		_, _, _, errWrongPass := deps.service.Login(ctx, u.Email, "wrong-pass")

		assert.ErrorIs(t, errUnknown, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, autherrors.ErrInvalidCredentials)
	})

	t.Run("pending account cannot log in even with the right password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := activeUser(t, "s3cret-pass")
		u.Status = user.StatusPending

		deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)

		_, _, _, err := deps.service.Login(ctx, u.Email, "s3cret-pass")

		assert.ErrorIs(t, err, autherrors.ErrAccountNotActive)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("always lands as PENDING with the USER role", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, rbac.RoleUser, u.Role)
				assert.Equal(t, user.StatusPending, u.Status)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-pass")))
				return nil
			})
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionCreate, "user", gomock.Any(), gomock.Any())

		resp, err := deps.service.Register(ctx, auth.RegisterRequest{
			Email:    "novo@example.com",
			Name:     "Novo",
			Password: "s3cret-pass",
		})

		assert.NoError(t, err)
		assert.Equal(t, user.StatusPending, resp.Status)
		assert.Equal(t, rbac.RoleUser, resp.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.users.EXPECT().
			Create(ctx, gomock.Any()).
			Return(gorm.ErrDuplicatedKey)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			Email:    "dup@example.com",
			Name:     "Dup",
			Password: "s3cret-pass",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong current password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := activeUser(t, "old-pass")

		deps.users.EXPECT().FindByID(ctx, u.ID).Return(u, nil)

		err := deps.service.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "not-the-old-pass",
			NewPassword:     "new-pass",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("success rehashes and persists", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := activeUser(t, "old-pass")

		deps.users.EXPECT().FindByID(ctx, u.ID).Return(u, nil)
		deps.users.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *user.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-pass")))
				return nil
			})
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionUpdate, "user", u.ID.String(), gomock.Any())

		err := deps.service.ChangePassword(ctx, u.ID.String(), auth.ChangePasswordRequest{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass",
		})

		assert.NoError(t, err)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email answers success without touching redis", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.users.EXPECT().
			FindByEmail(ctx, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.ForgotPassword(ctx, "ghost@example.com")

		assert.NoError(t, err)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("known email stores a single-use token", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := activeUser(t, "s3cret-pass")

		deps.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		deps.redisMock.Regexp().
			ExpectSet(`pwreset:[0-9a-f]{64}`, u.ID.String(), 15*time.Minute).
			SetVal("OK")

		err := deps.service.ForgotPassword(ctx, u.Email)

		assert.NoError(t, err)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.redisMock.ExpectGet("pwreset:bogus").RedisNil()

		err := deps.service.ResetPassword(ctx, auth.ResetPasswordRequest{
			Token:       "bogus",
			NewPassword: "new-pass",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidResetToken)
	})

	t.Run("success consumes the token", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		u := activeUser(t, "old-pass")

		deps.redisMock.ExpectGet("pwreset:tok123").SetVal(u.ID.String())
		deps.users.EXPECT().FindByID(ctx, u.ID).Return(u, nil)
		deps.users.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *user.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-pass")))
				return nil
			})
		deps.redisMock.ExpectDel("pwreset:tok123").SetVal(1)
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionUpdate, "user", u.ID.String(), gomock.Any())

		err := deps.service.ResetPassword(ctx, auth.ResetPasswordRequest{
			Token:       "tok123",
			NewPassword: "new-pass",
		})

		assert.NoError(t, err)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}
