package settings_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hr-backoffice/internal/audit"
	"hr-backoffice/internal/settings"
	settingserrors "hr-backoffice/internal/settings/errors"

	auditMock "hr-backoffice/internal/audit/mock"
	settingsMock "hr-backoffice/internal/settings/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const cacheKey = "settings:all"

type settingsServiceDeps struct {
	service   settings.Service
	repo      *settingsMock.MockRepository
	recorder  *auditMock.MockRecorder
	redisMock redismock.ClientMock
}

func setupSettingsServiceTest(t *testing.T) *settingsServiceDeps {
	ctrl := gomock.NewController(t)
	repo := settingsMock.NewMockRepository(ctrl)
	recorder := auditMock.NewMockRecorder(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &settingsServiceDeps{
		service:   settings.NewService(repo, rdb, recorder),
		repo:      repo,
		recorder:  recorder,
		redisMock: redisMock,
	}
}

func TestSettingsService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)
		cached, err := json.Marshal([]settings.SettingResponse{
			{Key: "company_name", Value: "Acme Ltda"},
		})
		assert.NoError(t, err)

		deps.redisMock.ExpectGet(cacheKey).SetVal(string(cached))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "company_name", resp[0].Key)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss reads the database and warms the cache", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)
		rows := []settings.Setting{{Key: "company_name", Value: "Acme Ltda"}}
		warmed, err := json.Marshal([]settings.SettingResponse{
			{Key: "company_name", Value: "Acme Ltda"},
		})
		assert.NoError(t, err)

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(rows, nil)
		deps.redisMock.ExpectSet(cacheKey, warmed, time.Hour).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestSettingsService_GetByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("key is normalized before lookup", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		deps.repo.EXPECT().
			FindByKey(ctx, "company_name").
			Return(&settings.Setting{Key: "company_name", Value: "Acme Ltda"}, nil)

		resp, err := deps.service.GetByKey(ctx, "  Company_Name ")

		assert.NoError(t, err)
		assert.Equal(t, "Acme Ltda", resp.Value)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		deps.repo.EXPECT().
			FindByKey(ctx, "missing").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByKey(ctx, "missing")

		assert.ErrorIs(t, err, settingserrors.ErrSettingNotFound)
	})

	t.Run("blank key", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		_, err := deps.service.GetByKey(ctx, "   ")

		assert.ErrorIs(t, err, settingserrors.ErrInvalidKey)
	})
}

func TestSettingsService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the cache", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		deps.repo.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, setting *settings.Setting) error {
				assert.Equal(t, "payroll_day", setting.Key)
				assert.Equal(t, "5", setting.Value)
				return nil
			})
		deps.redisMock.ExpectDel(cacheKey).SetVal(1)
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionUpdate, "setting", "payroll_day", gomock.Any())

		resp, err := deps.service.Upsert(ctx, settings.UpsertSettingRequest{
			Key:   " Payroll_Day ",
			Value: "5",
		})

		assert.NoError(t, err)
		assert.Equal(t, "payroll_day", resp.Key)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestSettingsService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the cache", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		deps.repo.EXPECT().DeleteByKey(ctx, "payroll_day").Return(int64(1), nil)
		deps.redisMock.ExpectDel(cacheKey).SetVal(1)
		deps.recorder.EXPECT().
			Record(ctx, audit.ActionDelete, "setting", "payroll_day", nil)

		err := deps.service.Delete(ctx, "payroll_day")

		assert.NoError(t, err)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		deps.repo.EXPECT().DeleteByKey(ctx, "ghost").Return(int64(0), nil)

		err := deps.service.Delete(ctx, "ghost")

		assert.ErrorIs(t, err, settingserrors.ErrSettingNotFound)
	})
}
