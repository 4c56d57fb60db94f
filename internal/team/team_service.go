package team

import (
	"context"
	"strings"

	"hr-backoffice/internal/audit"
	teamerrors "hr-backoffice/internal/team/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateMemberRequest) (MemberResponse, error)
	GetAll(ctx context.Context) ([]MemberResponse, error)
	GetByID(ctx context.Context, id string) (MemberResponse, error)
	Update(ctx context.Context, id string, req UpdateMemberRequest) (MemberResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateMemberRequest) (MemberResponse, error) {
	employeeID, err := parseOptionalEmployeeID(req.EmployeeID)
	if err != nil {
		return MemberResponse{}, err
	}

	m := &Member{
		ID:         uuid.New(),
		Name:       req.Name,
		Position:   req.Position,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		EmployeeID: employeeID,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error("create team member failed", zap.Error(err))
		return MemberResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionCreate, "team_member", m.ID.String(), req)

	s.logger.Info("team member created", zap.String("member_id", m.ID.String()))
	return mapToResponse(*m), nil
}

func (s *service) GetAll(ctx context.Context) ([]MemberResponse, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all team members failed", zap.Error(err))
		return nil, err
	}

	res := make([]MemberResponse, len(members))
	for i, m := range members {
		res[i] = mapToResponse(m)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (MemberResponse, error) {
	mid, err := uuid.Parse(id)
	if err != nil {
		return MemberResponse{}, teamerrors.ErrInvalidMemberID
	}

	m, err := s.repo.FindByID(ctx, mid)
	if err != nil {
		return MemberResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*m), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateMemberRequest) (MemberResponse, error) {
	mid, err := uuid.Parse(id)
	if err != nil {
		return MemberResponse{}, teamerrors.ErrInvalidMemberID
	}

	m, err := s.repo.FindByID(ctx, mid)
	if err != nil {
		return MemberResponse{}, mapRepositoryError(err)
	}

	employeeID, err := parseOptionalEmployeeID(req.EmployeeID)
	if err != nil {
		return MemberResponse{}, err
	}

	m.Name = req.Name
	m.Position = req.Position
	m.Email = strings.ToLower(strings.TrimSpace(req.Email))
	m.EmployeeID = employeeID

	if err := s.repo.Update(ctx, m); err != nil {
		s.logger.Error("update team member failed", zap.String("member_id", id), zap.Error(err))
		return MemberResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "team_member", id, req)

	s.logger.Info("team member updated", zap.String("member_id", id))
	return mapToResponse(*m), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	mid, err := uuid.Parse(id)
	if err != nil {
		return teamerrors.ErrInvalidMemberID
	}

	if _, err := s.repo.FindByID(ctx, mid); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, mid); err != nil {
		s.logger.Error("delete team member failed", zap.String("member_id", id), zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, audit.ActionDelete, "team_member", id, nil)

	s.logger.Info("team member deleted", zap.String("member_id", id))
	return nil
}

func parseOptionalEmployeeID(id string) (*uuid.UUID, error) {
	if id == "" {
		return nil, nil
	}
	eid, err := uuid.Parse(id)
	if err != nil {
		return nil, teamerrors.ErrEmployeeNotFound
	}
	return &eid, nil
}

func mapToResponse(m Member) MemberResponse {
	res := MemberResponse{
		ID:       m.ID.String(),
		Name:     m.Name,
		Position: m.Position,
		Email:    m.Email,
	}
	if m.EmployeeID != nil {
		res.EmployeeID = m.EmployeeID.String()
	}
	return res
}
