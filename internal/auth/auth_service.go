package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"hr-backoffice/internal/audit"
	autherrors "hr-backoffice/internal/auth/errors"
	"hr-backoffice/internal/rbac"
	"hr-backoffice/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
	resetTokenTTL   = 15 * time.Minute

	resetKeyPrefix = "pwreset:"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type service struct {
	users    user.Repository
	rdb      *redis.Client
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(users user.Repository, rdb *redis.Client, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, rdb: rdb, recorder: recorder, logger: l}
}

// Login fails closed: unknown email and wrong password collapse into the
// same unauthorized error. A matched password on a non-ACTIVE account is the
// one distinguished case.
func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if u.Status != user.StatusActive {
		s.logger.Warn("login rejected for non-active account",
			zap.String("target_user_id", u.ID.String()),
			zap.String("status", u.Status),
		)
		return "", "", AuthResponse{}, autherrors.ErrAccountNotActive
	}

	accessToken, err := s.generateToken(u, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(u, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("target_user_id", u.ID.String()))
	return accessToken, refreshToken, mapToResponse(u), nil
}

// Register always produces a PENDING account with the USER role, regardless
// of anything the caller supplies.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		Role:     rbac.RoleUser,
		Status:   user.StatusPending,
	}

	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Warn("register persist failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	s.recorder.Record(ctx, audit.ActionCreate, "user", u.ID.String(), AuthResponse{
		ID:     u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	})

	s.logger.Info("register success", zap.String("target_user_id", u.ID.String()))
	return mapToResponse(u), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	// A deactivated account cannot refresh its way back in.
	if u.Status != user.StatusActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountNotActive
	}

	newAccessToken, err := s.generateToken(u, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(u, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToResponse(u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	resp := mapToResponse(u)
	return &resp, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Error("change password persist failed", zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "user", u.ID.String(), map[string]string{"field": "password"})

	s.logger.Info("change password success", zap.String("target_user_id", userID))
	return nil
}

// ForgotPassword answers identically whether or not the email exists, so it
// cannot be used to probe for accounts.
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Debug("forgot password for unknown email")
		return nil
	}

	token := randomToken()
	if err := s.rdb.Set(ctx, resetKeyPrefix+token, u.ID.String(), resetTokenTTL).Err(); err != nil {
		s.logger.Error("store reset token failed", zap.Error(err))
		return err
	}

	// Delivery (email) is outside this service; the token is logged so an
	// operator can relay it in environments without a mailer.
	s.logger.Info("password reset token issued",
		zap.String("target_user_id", u.ID.String()),
		zap.String("reset_token", token),
	)
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	key := resetKeyPrefix + req.Token

	userIDStr, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return autherrors.ErrInvalidResetToken
		}
		return err
	}

	id, err := uuid.Parse(userIDStr)
	if err != nil {
		return autherrors.ErrInvalidResetToken
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return autherrors.ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Error("reset password persist failed", zap.Error(err))
		return err
	}

	// Single use.
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("delete reset token failed", zap.Error(err))
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "user", u.ID.String(), map[string]string{"field": "password"})

	s.logger.Info("reset password success", zap.String("target_user_id", u.ID.String()))
	return nil
}

// generateToken issues a self-contained HS256 token carrying the identity
// claims the middleware needs; no server-side session state exists.
func (s *service) generateToken(u *user.User, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func randomToken() string {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b[:])
}

func mapToResponse(u *user.User) AuthResponse {
	return AuthResponse{
		ID:     u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	}
}
