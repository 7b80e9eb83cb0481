package schedule

import (
	"context"
	"testing"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	schedules []*Schedule
}

func (f *fakeRepo) List(ctx context.Context, activeOnly bool) ([]*Schedule, error) {
	if !activeOnly {
		return f.schedules, nil
	}
	out := []*Schedule{}
	for _, s := range f.schedules {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ReplaceAll(ctx context.Context, schedules []*Schedule) error {
	f.schedules = schedules
	return nil
}

func TestReplaceSwapsWholeSet(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	out, err := svc.Replace(context.Background(), ReplaceRequest{Schedules: []Input{
		{DayOfWeek: "Miércoles", StartTime: "13:00", EndTime: "20:00", Type: TypeDelivery, IsActive: true},
		{DayOfWeek: "Sábado", StartTime: "13:00", EndTime: "20:00", Type: TypePickup, IsActive: false},
	}})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Len(t, repo.schedules, 2)

	active, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Miércoles", active[0].DayOfWeek)
}

func TestReplaceValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	cases := []Input{
		{DayOfWeek: "Funday", StartTime: "13:00", EndTime: "20:00", Type: TypePickup},
		{DayOfWeek: "Lunes", StartTime: "1pm", EndTime: "20:00", Type: TypePickup},
		{DayOfWeek: "Lunes", StartTime: "13:00", EndTime: "20:00", Type: "COURIER"},
	}
	for _, in := range cases {
		_, err := svc.Replace(context.Background(), ReplaceRequest{Schedules: []Input{in}})
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
}
