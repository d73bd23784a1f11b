package employee

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "github.com/Zamy17/absensi-karyawan/internal/employee/errors"
	"github.com/Zamy17/absensi-karyawan/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RosterCacheKey adalah key cache daftar karyawan; daftar ini dibaca
// setiap rekonsiliasi harian dan perhitungan skor bulanan.
const RosterCacheKey = "employees:roster"

const rosterCacheTTL = 5 * time.Minute

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetRoster(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("position", req.Position),
	)

	if strings.TrimSpace(req.Name) == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmptyName
	}

	e := &Employee{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Position: req.Position,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateRoster(ctx)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	roster, err := s.GetRoster(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(roster))
	for i, e := range roster {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

// GetRoster mengembalikan seluruh karyawan, lewat cache Redis bila
// tersedia. Fetch ke database di-collapse dengan singleflight agar
// cache-miss bersamaan tidak membanjiri store.
func (s *service) GetRoster(ctx context.Context) ([]Employee, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, RosterCacheKey).Result(); err == nil {
			var cached []Employee
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	v, err, _ := s.sf.Do(RosterCacheKey, func() (any, error) {
		roster, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(roster); err == nil {
				if err := s.rdb.Set(ctx, RosterCacheKey, payload, rosterCacheTTL).Err(); err != nil {
					s.logger.Warn("cache roster failed", zap.Error(err))
				}
			}
		}
		return roster, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Employee), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if strings.TrimSpace(req.Name) == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmptyName
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	e.Name = strings.TrimSpace(req.Name)
	e.Position = req.Position
	e.Email = req.Email
	e.Phone = req.Phone

	if err := s.repo.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateRoster(ctx)
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateRoster(ctx)
	return nil
}

func (s *service) invalidateRoster(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, RosterCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate roster cache failed", zap.Error(err))
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID.String(),
		Name:     e.Name,
		Position: e.Position,
		Email:    e.Email,
		Phone:    e.Phone,
	}
}
