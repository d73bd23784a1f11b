package user

import (
	"context"
	"errors"
	"strings"

	usererrors "github.com/Zamy17/absensi-karyawan/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service mengelola akun satpam. Akun admin dibuat di luar aplikasi.
type Service interface {
	CreateGuard(ctx context.Context, req CreateGuardRequest) (GuardResponse, error)
	GetGuards(ctx context.Context) ([]GuardResponse, error)
	GetGuardByID(ctx context.Context, id string) (GuardResponse, error)
	UpdateGuard(ctx context.Context, id string, req UpdateGuardRequest) (GuardResponse, error)
	DeleteGuard(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CreateGuard(ctx context.Context, req CreateGuardRequest) (GuardResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return GuardResponse{}, err
	}

	u := &User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     RoleGuard,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create guard failed", zap.String("email", u.Email), zap.Error(err))
		return GuardResponse{}, mapRepositoryError(err)
	}

	return mapToGuardResponse(*u), nil
}

func (s *service) GetGuards(ctx context.Context) ([]GuardResponse, error) {
	guards, err := s.repo.FindAllByRole(ctx, RoleGuard)
	if err != nil {
		return nil, err
	}

	resp := make([]GuardResponse, len(guards))
	for i, g := range guards {
		resp[i] = mapToGuardResponse(g)
	}
	return resp, nil
}

func (s *service) GetGuardByID(ctx context.Context, id string) (GuardResponse, error) {
	u, err := s.findGuard(ctx, id)
	if err != nil {
		return GuardResponse{}, err
	}
	return mapToGuardResponse(*u), nil
}

func (s *service) UpdateGuard(ctx context.Context, id string, req UpdateGuardRequest) (GuardResponse, error) {
	u, err := s.findGuard(ctx, id)
	if err != nil {
		return GuardResponse{}, err
	}

	u.Name = strings.TrimSpace(req.Name)
	u.Phone = req.Phone

	if err := s.repo.Update(ctx, u); err != nil {
		return GuardResponse{}, err
	}
	return mapToGuardResponse(*u), nil
}

func (s *service) DeleteGuard(ctx context.Context, id string) error {
	if _, err := s.findGuard(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) findGuard(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrGuardNotFound
		}
		return nil, err
	}
	if u.Role != RoleGuard {
		return nil, usererrors.ErrGuardNotFound
	}
	return u, nil
}

func mapToGuardResponse(u User) GuardResponse {
	return GuardResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
