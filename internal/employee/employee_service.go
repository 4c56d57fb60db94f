package employee

import (
	"context"
	"errors"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/contract"
	"hr-backoffice/internal/document"
	employeeerrors "hr-backoffice/internal/employee/errors"
	"hr-backoffice/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("registration_code", req.RegistrationCode),
	)

	cpf := NormalizeCPF(req.CPF)
	if len(cpf) == 11 && !ValidCPF(cpf) {
		s.logger.Warn("cpf failed checksum, storing as opaque identifier",
			zap.String("request_id", rid),
		)
	}

	// Friendlier than waiting for 23505. The unique index still backs
	// this up when two creates race.
	if _, err := s.repo.FindByCPF(ctx, cpf); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrCPFAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("cpf lookup failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	empl := &Employee{
		ID:               uuid.New(),
		Name:             req.Name,
		CPF:              cpf,
		RegistrationCode: req.RegistrationCode,
		Status:           status,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionCreate, "employee", empl.ID.String(), req)

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	res := make([]EmployeeResponse, len(employees))
	for i, empl := range employees {
		res[i] = mapToResponse(empl)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

// Update never touches the CPF. A typo there means delete and recreate, not
// silently rebinding a person's records to another document number.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.RegistrationCode = req.RegistrationCode
	empl.Status = req.Status

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "employee", id, req)

	s.logger.Info("employee updated", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	eid, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := s.repo.FindByID(ctx, eid); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, eid); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, audit.ActionDelete, "employee", id, nil)

	s.logger.Info("employee deleted", zap.String("employee_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	res := EmployeeResponse{
		ID:               empl.ID.String(),
		Name:             empl.Name,
		CPF:              empl.CPF,
		RegistrationCode: empl.RegistrationCode,
		Status:           empl.Status,
	}
	if len(empl.Contracts) > 0 {
		res.Contracts = contract.ToResponseList(empl.Contracts)
	}
	if len(empl.Documents) > 0 {
		res.Documents = document.ToResponseList(empl.Documents)
	}
	return res
}
