package production

import (
	"context"
	"testing"
	"time"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created []*Record
}

func (f *fakeRepo) Create(ctx context.Context, rec *Record) error {
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Record, error) {
	return f.created, nil
}

func TestCreateRecord(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	admin := uuid.New()

	rec, err := svc.Create(context.Background(), admin, CreateRequest{
		Date:     "2026-08-15",
		Quantity: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, rec.Quantity)
	assert.Equal(t, admin, rec.UserID)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), rec.Date)
	require.Len(t, repo.created, 1)
}

func TestCreateRecordAcceptsRFC3339(t *testing.T) {
	svc := NewService(&fakeRepo{})

	rec, err := svc.Create(context.Background(), uuid.New(), CreateRequest{
		Date:     "2026-08-15T09:30:00-03:00",
		Quantity: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, rec.Date.Day())
}

func TestCreateRecordValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{Date: "ayer", Quantity: 10})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.Create(context.Background(), uuid.New(), CreateRequest{Date: "2026-08-15", Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}
