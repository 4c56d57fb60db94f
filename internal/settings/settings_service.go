package settings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"hr-backoffice/internal/audit"
	settingserrors "hr-backoffice/internal/settings/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	settingsCacheKey = "settings:all"
	settingsCacheTTL = 1 * time.Hour
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]SettingResponse, error)
	GetByKey(ctx context.Context, key string) (SettingResponse, error)
	Upsert(ctx context.Context, req UpsertSettingRequest) (SettingResponse, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		recorder: recorder,
		logger:   l,
	}
}

// GetAll serves from redis when possible. Misses are collapsed through
// singleflight so a cold cache costs one query no matter how many callers
// pile up.
func (s *service) GetAll(ctx context.Context) ([]SettingResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, settingsCacheKey).Result(); err == nil {
			var resp []SettingResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(settingsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]SettingResponse, len(rows))
		for i, row := range rows {
			resp[i] = SettingResponse{Key: row.Key, Value: row.Value}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, settingsCacheKey, jsonData, settingsCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all settings failed", zap.Error(err))
		return nil, err
	}

	return v.([]SettingResponse), nil
}

func (s *service) GetByKey(ctx context.Context, key string) (SettingResponse, error) {
	key = normalizeKey(key)
	if key == "" {
		return SettingResponse{}, settingserrors.ErrInvalidKey
	}

	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingResponse{}, settingserrors.ErrSettingNotFound
		}
		return SettingResponse{}, err
	}
	return SettingResponse{Key: setting.Key, Value: setting.Value}, nil
}

func (s *service) Upsert(ctx context.Context, req UpsertSettingRequest) (SettingResponse, error) {
	key := normalizeKey(req.Key)
	if key == "" {
		return SettingResponse{}, settingserrors.ErrInvalidKey
	}

	setting := &Setting{
		ID:    uuid.New(),
		Key:   key,
		Value: req.Value,
	}

	if err := s.repo.Upsert(ctx, setting); err != nil {
		s.logger.Error("upsert setting failed", zap.String("key", key), zap.Error(err))
		return SettingResponse{}, err
	}

	s.invalidateCache(ctx)
	s.recorder.Record(ctx, audit.ActionUpdate, "setting", key, req)

	s.logger.Info("setting upserted", zap.String("key", key))
	return SettingResponse{Key: key, Value: req.Value}, nil
}

func (s *service) Delete(ctx context.Context, key string) error {
	key = normalizeKey(key)
	if key == "" {
		return settingserrors.ErrInvalidKey
	}

	affected, err := s.repo.DeleteByKey(ctx, key)
	if err != nil {
		s.logger.Error("delete setting failed", zap.String("key", key), zap.Error(err))
		return err
	}
	if affected == 0 {
		return settingserrors.ErrSettingNotFound
	}

	s.invalidateCache(ctx)
	s.recorder.Record(ctx, audit.ActionDelete, "setting", key, nil)

	s.logger.Info("setting deleted", zap.String("key", key))
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, settingsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate settings cache failed", zap.Error(err))
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
