package user

import (
	"context"
	"os"

	"hr-backoffice/internal/audit"
	usererrors "hr-backoffice/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string, confirmationCode string) error
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
}

type service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	s.logger.Debug("create user requested", zap.String("email", req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	u := &User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		Role:     req.Role,
		Status:   status,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionCreate, "user", u.ID.String(), UserResponse{
		ID:     u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	})

	s.logger.Info("create user success", zap.String("target_user_id", u.ID.String()))
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Name = req.Name
	u.Role = req.Role
	u.Status = req.Status

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "user", u.ID.String(), req)

	s.logger.Info("update user success", zap.String("target_user_id", id))
	return mapToResponse(*u), nil
}

// Delete hard-requires a secondary confirmation code matched against the
// MASTER_DELETE_HASH bcrypt hash. An unset hash refuses deletion; there is
// no fallback value.
func (s *service) Delete(ctx context.Context, id string, confirmationCode string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}

	masterHash := os.Getenv("MASTER_DELETE_HASH")
	if masterHash == "" {
		s.logger.Error("delete user refused: MASTER_DELETE_HASH is not set")
		return usererrors.ErrDeleteNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(masterHash), []byte(confirmationCode)); err != nil {
		s.logger.Warn("delete user confirmation code mismatch", zap.String("target_user_id", id))
		return usererrors.ErrInvalidConfirmationCode
	}

	if _, err := s.repo.FindByID(ctx, uid); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		s.logger.Error("delete user failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionDelete, "user", id, nil)

	s.logger.Info("delete user success", zap.String("target_user_id", id))
	return nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (UserResponse, error) {
	return s.GetByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Name = req.Name

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update profile persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "user", u.ID.String(), req)

	return mapToResponse(*u), nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:     u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Status: u.Status,
	}
}

func mapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res
}
