package employee

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn   func(ctx context.Context, e *Employee) error
	findAllFn  func(ctx context.Context) ([]Employee, error)
	findByIDFn func(ctx context.Context, id string) (*Employee, error)
	updateFn   func(ctx context.Context, e *Employee) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository                { return f }
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, e *Employee) error { return f.updateFn(ctx, e) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error   { return f.deleteFn(ctx, id) }

func TestService_Create_RejectsEmptyName(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{Name: "   ", Position: "Staff"})
	assert.Error(t, err)
}

func TestService_Create_TrimsName(t *testing.T) {
	var saved Employee
	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *Employee) error { saved = *e; return nil },
	}
	svc := NewService(repo, nil)

	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{Name: " Budi ", Position: "Staff Gudang"})
	assert.NoError(t, err)
	assert.Equal(t, "Budi", saved.Name)
	assert.Equal(t, "Staff Gudang", resp.Position)
	assert.NotEmpty(t, resp.ID)
}

func TestService_GetRoster_UsesCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	cached := []Employee{{ID: uuid.New(), Name: "Budi", Position: "Staff"}}
	payload, _ := json.Marshal(cached)
	mock.ExpectGet(RosterCacheKey).SetVal(string(payload))

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Employee, error) {
			t.Fatal("should not hit repo on cache hit")
			return nil, nil
		},
	}
	svc := NewService(repo, rdb)

	roster, err := svc.GetRoster(context.Background())
	assert.NoError(t, err)
	assert.Len(t, roster, 1)
	assert.Equal(t, "Budi", roster[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetRoster_CacheMissFillsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	roster := []Employee{{ID: uuid.New(), Name: "Siti", Position: "Admin"}}
	payload, _ := json.Marshal(roster)

	mock.ExpectGet(RosterCacheKey).RedisNil()
	mock.ExpectSet(RosterCacheKey, payload, 5*time.Minute).SetVal("OK")

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Employee, error) { return roster, nil },
	}
	svc := NewService(repo, rdb)

	got, err := svc.GetRoster(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, nil)

	_, err := svc.Update(context.Background(), uuid.New().String(), UpdateEmployeeRequest{Name: "Budi", Position: "Staff"})
	assert.Error(t, err)
}

func TestService_Delete_InvalidID(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)
	err := svc.Delete(context.Background(), "bukan-uuid")
	assert.Error(t, err)
}
