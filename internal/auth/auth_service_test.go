package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/Zamy17/absensi-karyawan/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*user.User // keyed by id
	byEmail map[string]*user.User
	findByIDErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDErr != nil {
		return nil, f.findByIDErr
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}
func (f *fakeUserRepo) FindAllByRole(ctx context.Context, role string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }

func newRepoWithUser(u *user.User) *fakeUserRepo {
	return &fakeUserRepo{
		users:   map[string]*user.User{u.ID.String(): u},
		byEmail: map[string]*user.User{u.Email: u},
	}
}

func TestRoleFromEmail(t *testing.T) {
	assert.Equal(t, user.RoleAdmin, RoleFromEmail("admin@kantor.id"))
	assert.Equal(t, user.RoleGuard, RoleFromEmail("satpam.satu@kantor.id"))
	assert.Equal(t, user.RoleGuard, RoleFromEmail("guard2@kantor.id"))
	assert.Equal(t, user.RoleUser, RoleFromEmail("budi@kantor.id"))
	assert.Equal(t, user.RoleUser, RoleFromEmail(""))
}

func TestService_Login_WrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("benar"), bcrypt.DefaultCost)
	u := &user.User{ID: uuid.New(), Email: "satpam@kantor.id", Password: string(hashed), Role: user.RoleGuard, IsActive: true}
	svc := NewService(newRepoWithUser(u), false)

	_, err := svc.Login(context.Background(), "satpam@kantor.id", "salah")
	assert.Error(t, err)
}

func TestService_Login_ReturnsRoleFromStore(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.DefaultCost)
	u := &user.User{ID: uuid.New(), Name: "Pak Satpam", Email: "pos1@kantor.id", Password: string(hashed), Role: user.RoleGuard, IsActive: true}
	svc := NewService(newRepoWithUser(u), false)

	resp, err := svc.Login(context.Background(), "pos1@kantor.id", "rahasia")
	assert.NoError(t, err)
	assert.Equal(t, user.RoleGuard, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestService_RoleOf_FallbackDisabled(t *testing.T) {
	repo := &fakeUserRepo{findByIDErr: errors.New("permission denied")}
	svc := NewService(repo, false)

	role := svc.RoleOf(context.Background(), uuid.New().String(), "admin@kantor.id")
	assert.Equal(t, user.RoleUser, role)
}

func TestService_RoleOf_FallbackEnabled(t *testing.T) {
	repo := &fakeUserRepo{findByIDErr: errors.New("permission denied")}
	svc := NewService(repo, true)

	role := svc.RoleOf(context.Background(), uuid.New().String(), "admin@kantor.id")
	assert.Equal(t, user.RoleAdmin, role)

	role = svc.RoleOf(context.Background(), uuid.New().String(), "satpam@kantor.id")
	assert.Equal(t, user.RoleGuard, role)
}

func TestService_Login_InactiveAccount(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.DefaultCost)
	u := &user.User{ID: uuid.New(), Email: "pos2@kantor.id", Password: string(hashed), Role: user.RoleGuard, IsActive: false}
	svc := NewService(newRepoWithUser(u), false)

	_, err := svc.Login(context.Background(), "pos2@kantor.id", "rahasia")
	assert.Error(t, err)
}
