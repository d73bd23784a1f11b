package user

import (
	"context"
	"testing"

	usererrors "github.com/Zamy17/absensi-karyawan/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn        func(ctx context.Context, u *User) error
	findByIDFn      func(ctx context.Context, id string) (*User, error)
	findByEmailFn   func(ctx context.Context, email string) (*User, error)
	findAllByRoleFn func(ctx context.Context, role string) ([]User, error)
	updateFn        func(ctx context.Context, u *User) error
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error { return f.createFn(ctx, u) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeRepo) FindAllByRole(ctx context.Context, role string) ([]User, error) {
	return f.findAllByRoleFn(ctx, role)
}
func (f *fakeRepo) Update(ctx context.Context, u *User) error { return f.updateFn(ctx, u) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

func TestService_CreateGuard_HashesPasswordAndSetsRole(t *testing.T) {
	var saved User
	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error { saved = *u; return nil },
	}
	svc := NewService(repo)

	resp, err := svc.CreateGuard(context.Background(), CreateGuardRequest{
		Name:     "Pak Satpam",
		Email:    "Satpam.Satu@Example.com",
		Password: "rahasia-sekali",
	})
	assert.NoError(t, err)
	assert.Equal(t, RoleGuard, saved.Role)
	assert.Equal(t, "satpam.satu@example.com", saved.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("rahasia-sekali")))
	assert.Equal(t, RoleGuard, resp.Role)
}

func TestService_CreateGuard_DuplicateEmail(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"}
		},
	}
	svc := NewService(repo)

	_, err := svc.CreateGuard(context.Background(), CreateGuardRequest{
		Name:     "Pak Satpam",
		Email:    "satpam.satu@example.com",
		Password: "rahasia-sekali",
	})
	assert.ErrorIs(t, err, usererrors.ErrEmailAlreadyRegistered)
}

func TestService_GetGuards_FiltersByRole(t *testing.T) {
	repo := &fakeRepo{
		findAllByRoleFn: func(ctx context.Context, role string) ([]User, error) {
			assert.Equal(t, RoleGuard, role)
			return []User{{ID: uuid.New(), Name: "Pak Satpam", Role: RoleGuard}}, nil
		},
	}
	svc := NewService(repo)

	guards, err := svc.GetGuards(context.Background())
	assert.NoError(t, err)
	assert.Len(t, guards, 1)
}

func TestService_GetGuardByID_RejectsNonGuard(t *testing.T) {
	adminID := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*User, error) {
			return &User{ID: adminID, Role: RoleAdmin}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.GetGuardByID(context.Background(), adminID.String())
	assert.Error(t, err)
}

func TestService_DeleteGuard_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo)

	err := svc.DeleteGuard(context.Background(), uuid.New().String())
	assert.Error(t, err)
}
