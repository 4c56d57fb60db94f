package project

import (
	"context"
	"errors"
	"time"

	"hr-backoffice/internal/audit"
	projecterrors "hr-backoffice/internal/project/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	p := &Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create project failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	s.recorder.Record(ctx, audit.ActionCreate, "project", p.ID.String(), req)

	s.logger.Info("project created", zap.String("project_id", p.ID.String()))
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all projects failed", zap.Error(err))
		return nil, err
	}

	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}

	p, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectResponse{}, projecterrors.ErrProjectNotFound
		}
		return ProjectResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}

	p, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectResponse{}, projecterrors.ErrProjectNotFound
		}
		return ProjectResponse{}, err
	}

	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Status = req.Status
	p.StartDate = start
	p.EndDate = end

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update project failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "project", id, req)

	s.logger.Info("project updated", zap.String("project_id", id))
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return projecterrors.ErrInvalidProjectID
	}

	if _, err := s.repo.FindByID(ctx, pid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projecterrors.ErrProjectNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, pid); err != nil {
		s.logger.Error("delete project failed", zap.String("project_id", id), zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, audit.ActionDelete, "project", id, nil)

	s.logger.Info("project deleted", zap.String("project_id", id))
	return nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, projecterrors.ErrInvalidDate
	}
	return &t, nil
}

func mapToResponse(p Project) ProjectResponse {
	res := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
	}
	if p.StartDate != nil {
		res.StartDate = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		res.EndDate = p.EndDate.Format(dateLayout)
	}
	return res
}
