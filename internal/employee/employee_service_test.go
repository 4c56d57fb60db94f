package employee_test

import (
	"context"
	"testing"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/contract"
	"hr-backoffice/internal/employee"
	employeeerrors "hr-backoffice/internal/employee/errors"

	auditMock "hr-backoffice/internal/audit/mock"
	employeeMock "hr-backoffice/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type employeeServiceDeps struct {
	service  employee.Service
	repo     *employeeMock.MockRepository
	recorder *auditMock.MockRecorder
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	recorder := auditMock.NewMockRecorder(ctrl)

	return &employeeServiceDeps{
		service:  employee.NewService(repo, recorder),
		repo:     repo,
		recorder: recorder,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - CPF stored in normalized form", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		req := employee.CreateEmployeeRequest{
			Name:             "Maria Souza",
			CPF:              "390.533.447-05",
			RegistrationCode: "EMP-0042",
		}

		deps.repo.EXPECT().
			FindByCPF(ctx, "39053344705").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, "39053344705", empl.CPF)
				assert.Equal(t, employee.StatusActive, empl.Status)
				return nil
			})
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionCreate, "employee", gomock.Any(), gomock.Any())

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "39053344705", resp.CPF)
		assert.Equal(t, "EMP-0042", resp.RegistrationCode)
	})

	t.Run("opaque identifiers are stored verbatim", func(t *testing.T) {
		for _, cpf := range []string{"12345678901", "EMP-001", "employee-alpha"} {
			t.Run(cpf, func(t *testing.T) {
				deps := setupEmployeeServiceTest(t)

				deps.repo.EXPECT().
					FindByCPF(ctx, cpf).
					Return(nil, gorm.ErrRecordNotFound)
				deps.repo.EXPECT().
					Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
						assert.Equal(t, cpf, empl.CPF)
						return nil
					})
				deps.recorder.EXPECT().
					Record(ctx, audit.ActionCreate, "employee", gomock.Any(), gomock.Any())

				resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
					Name:             "Maria Souza",
					CPF:              cpf,
					RegistrationCode: "EMP-" + cpf,
				})

				assert.NoError(t, err)
				assert.Equal(t, cpf, resp.CPF)
			})
		}
	})

	t.Run("duplicate CPF is caught before the insert", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.EXPECT().
			FindByCPF(ctx, "39053344705").
			Return(&employee.Employee{ID: uuid.New(), CPF: "39053344705"}, nil)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:             "Maria Souza",
			CPF:              "390.533.447-05",
			RegistrationCode: "EMP-0042",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrCPFAlreadyExists)
	})

	t.Run("duplicate CPF losing the race maps to conflict", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.EXPECT().
			FindByCPF(ctx, "39053344705").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_cpf"})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:             "Maria Souza",
			CPF:              "39053344705",
			RegistrationCode: "EMP-0042",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrCPFAlreadyExists)
	})

	t.Run("duplicate registration code maps to conflict", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.EXPECT().
			FindByCPF(ctx, "39053344705").
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_registration_code"})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name:             "Maria Souza",
			CPF:              "39053344705",
			RegistrationCode: "EMP-0042",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrRegistrationCodeAlreadyExists)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("embeds contracts in the response", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(&employee.Employee{
				ID:   id,
				Name: "Maria Souza",
				CPF:  "39053344705",
				Contracts: []contract.Contract{
					{ID: uuid.New(), EmployeeID: id, Type: "CLT", Status: contract.StatusActive},
				},
			}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Len(t, resp.Contracts, 1)
		assert.Equal(t, "CLT", resp.Contracts[0].Type)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		_, err := deps.service.GetByID(ctx, "42")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("CPF survives the update untouched", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		existing := &employee.Employee{
			ID:               id,
			Name:             "Maria Souza",
			CPF:              "39053344705",
			RegistrationCode: "EMP-0042",
			Status:           employee.StatusActive,
		}

		deps.repo.EXPECT().FindByID(ctx, id).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, "Maria Souza Lima", empl.Name)
				assert.Equal(t, "39053344705", empl.CPF)
				assert.Equal(t, employee.StatusOnLeave, empl.Status)
				return nil
			})
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionUpdate, "employee", id.String(), gomock.Any())

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			Name:             "Maria Souza Lima",
			RegistrationCode: "EMP-0042",
			Status:           employee.StatusOnLeave,
		})

		assert.NoError(t, err)
		assert.Equal(t, "39053344705", resp.CPF)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(&employee.Employee{ID: id}, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionDelete, "employee", id.String(), nil)

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
