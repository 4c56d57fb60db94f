package contract

import (
	"context"
	"time"

	"hr-backoffice/internal/audit"
	contracterrors "hr-backoffice/internal/contract/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=contract_service.go -destination=mock/contract_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error)
	GetAll(ctx context.Context) ([]ContractResponse, error)
	GetByID(ctx context.Context, id string) (ContractResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]ContractResponse, error)
	Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("contract.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contract.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrEmployeeNotFound
	}

	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	ct := &Contract{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Type:       req.Type,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
	}

	if err := s.repo.Create(ctx, ct); err != nil {
		s.logger.Error("create contract failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return ContractResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionCreate, "contract", ct.ID.String(), req)

	s.logger.Info("contract created",
		zap.String("contract_id", ct.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*ct), nil
}

func (s *service) GetAll(ctx context.Context) ([]ContractResponse, error) {
	contracts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all contracts failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(contracts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ContractResponse, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractID
	}

	ct, err := s.repo.FindByID(ctx, cid)
	if err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ct), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]ContractResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, contracterrors.ErrEmployeeNotFound
	}

	contracts, err := s.repo.FindByEmployee(ctx, eid)
	if err != nil {
		s.logger.Error("get contracts by employee failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(contracts), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return ContractResponse{}, contracterrors.ErrInvalidContractID
	}

	ct, err := s.repo.FindByID(ctx, cid)
	if err != nil {
		return ContractResponse{}, mapRepositoryError(err)
	}

	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}

	ct.Type = req.Type
	ct.StartDate = start
	ct.EndDate = end
	ct.Status = req.Status

	if err := s.repo.Update(ctx, ct); err != nil {
		s.logger.Error("update contract failed", zap.String("contract_id", id), zap.Error(err))
		return ContractResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "contract", id, req)

	s.logger.Info("contract updated", zap.String("contract_id", id))
	return mapToResponse(*ct), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	cid, err := uuid.Parse(id)
	if err != nil {
		return contracterrors.ErrInvalidContractID
	}

	if _, err := s.repo.FindByID(ctx, cid); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, cid); err != nil {
		s.logger.Error("delete contract failed", zap.String("contract_id", id), zap.Error(err))
		return err
	}

	s.recorder.Record(ctx, audit.ActionDelete, "contract", id, nil)

	s.logger.Info("contract deleted", zap.String("contract_id", id))
	return nil
}

func parseDates(startDate, endDate string) (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, nil, contracterrors.ErrInvalidDate
	}

	if endDate == "" {
		return start, nil, nil
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, nil, contracterrors.ErrInvalidDate
	}
	if end.Before(start) {
		return time.Time{}, nil, contracterrors.ErrEndBeforeStart
	}
	return start, &end, nil
}

// ToResponseList is used by the employee read model to embed contracts.
func ToResponseList(contracts []Contract) []ContractResponse {
	return mapToListResponse(contracts)
}

func mapToResponse(ct Contract) ContractResponse {
	res := ContractResponse{
		ID:         ct.ID.String(),
		EmployeeID: ct.EmployeeID.String(),
		Type:       ct.Type,
		StartDate:  ct.StartDate.Format(dateLayout),
		Status:     ct.Status,
	}
	if ct.EndDate != nil {
		res.EndDate = ct.EndDate.Format(dateLayout)
	}
	return res
}

func mapToListResponse(contracts []Contract) []ContractResponse {
	res := make([]ContractResponse, len(contracts))
	for i, ct := range contracts {
		res[i] = mapToResponse(ct)
	}
	return res
}
