package holiday

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePredefinedRepo struct {
	seq      int
	holidays []holiday.PredefinedHoliday
}

func (r *fakePredefinedRepo) Create(_ context.Context, h holiday.PredefinedHoliday) (holiday.PredefinedHoliday, error) {
	r.seq++
	h.ID = fmt.Sprintf("hol-%d", r.seq)
	r.holidays = append(r.holidays, h)
	return h, nil
}

func (r *fakePredefinedRepo) Exists(_ context.Context, name string, date time.Time) (bool, error) {
	for _, h := range r.holidays {
		if h.Name == name && h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePredefinedRepo) List(_ context.Context) ([]holiday.PredefinedHoliday, error) {
	return r.holidays, nil
}

func (r *fakePredefinedRepo) Delete(_ context.Context, id string) error {
	for i, h := range r.holidays {
		if h.ID == id {
			r.holidays = append(r.holidays[:i], r.holidays[i+1:]...)
			return nil
		}
	}
	return holiday.ErrHolidayNotFound
}

type fakeSelectedRepo struct {
	seq        int
	selections map[string]holiday.SelectedHoliday
}

func newFakeSelectedRepo() *fakeSelectedRepo {
	return &fakeSelectedRepo{selections: map[string]holiday.SelectedHoliday{}}
}

func (r *fakeSelectedRepo) Upsert(_ context.Context, sel holiday.SelectedHoliday) (holiday.SelectedHoliday, error) {
	if existing, ok := r.selections[sel.EmployeeID]; ok {
		sel.ID = existing.ID
	} else {
		r.seq++
		sel.ID = fmt.Sprintf("sel-%d", r.seq)
	}
	for i := range sel.Entries {
		if sel.Entries[i].ID == "" {
			r.seq++
			sel.Entries[i].ID = fmt.Sprintf("entry-%d", r.seq)
		}
	}
	r.selections[sel.EmployeeID] = sel
	return sel, nil
}

func (r *fakeSelectedRepo) GetByEmployee(_ context.Context, employeeID string) (holiday.SelectedHoliday, error) {
	sel, ok := r.selections[employeeID]
	if !ok {
		return holiday.SelectedHoliday{}, holiday.ErrSelectionNotFound
	}
	return sel, nil
}

func inputs(n int) []holiday.SelectedHolidayInput {
	result := make([]holiday.SelectedHolidayInput, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, holiday.SelectedHolidayInput{
			Name: fmt.Sprintf("Holiday %d", i+1),
			Date: fmt.Sprintf("2026-07-%02d", i+1),
		})
	}
	return result
}

func TestSelectHolidays(t *testing.T) {
	t.Run("selection capped at ten", func(t *testing.T) {
		svc := NewHolidayService(&fakePredefinedRepo{}, newFakeSelectedRepo())

		_, err := svc.SelectHolidays(context.Background(), holiday.SelectHolidaysRequest{
			EmployeeID:       "emp-1",
			SelectedHolidays: inputs(11),
		})
		assert.ErrorIs(t, err, holiday.ErrSelectionLimitExceeded)
	})

	t.Run("exactly ten is allowed", func(t *testing.T) {
		svc := NewHolidayService(&fakePredefinedRepo{}, newFakeSelectedRepo())

		entries, err := svc.SelectHolidays(context.Background(), holiday.SelectHolidaysRequest{
			EmployeeID:       "emp-1",
			SelectedHolidays: inputs(10),
		})
		require.NoError(t, err)
		assert.Len(t, entries, 10)
	})

	t.Run("resubmit replaces the previous selection", func(t *testing.T) {
		selRepo := newFakeSelectedRepo()
		svc := NewHolidayService(&fakePredefinedRepo{}, selRepo)
		ctx := context.Background()

		_, err := svc.SelectHolidays(ctx, holiday.SelectHolidaysRequest{
			EmployeeID:       "emp-1",
			SelectedHolidays: inputs(5),
		})
		require.NoError(t, err)

		entries, err := svc.SelectHolidays(ctx, holiday.SelectHolidaysRequest{
			EmployeeID:       "emp-1",
			SelectedHolidays: inputs(2),
		})
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		current, err := svc.GetSelectedHolidays(ctx, "emp-1")
		require.NoError(t, err)
		assert.Len(t, current, 2)
	})
}

func TestDeleteCustomHoliday(t *testing.T) {
	selRepo := newFakeSelectedRepo()
	svc := NewHolidayService(&fakePredefinedRepo{}, selRepo)
	ctx := context.Background()

	entries, err := svc.SelectHolidays(ctx, holiday.SelectHolidaysRequest{
		EmployeeID:       "emp-1",
		SelectedHolidays: inputs(3),
	})
	require.NoError(t, err)

	remaining, err := svc.DeleteCustomHoliday(ctx, "emp-1", entries[1].ID)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "Holiday 1", remaining[0].Name)
	assert.Equal(t, "Holiday 3", remaining[1].Name)

	_, err = svc.DeleteCustomHoliday(ctx, "emp-1", "entry-unknown")
	assert.ErrorIs(t, err, holiday.ErrHolidayEntryNotFound)

	_, err = svc.DeleteCustomHoliday(ctx, "emp-2", entries[0].ID)
	assert.ErrorIs(t, err, holiday.ErrSelectionNotFound)
}

func TestAddPredefinedHolidays(t *testing.T) {
	preRepo := &fakePredefinedRepo{}
	svc := NewHolidayService(preRepo, newFakeSelectedRepo())
	ctx := context.Background()

	added, err := svc.AddPredefinedHolidays(ctx, holiday.AddPredefinedHolidaysRequest{
		Holidays: []holiday.HolidayInput{
			{Name: "New Year", Date: "2026-01-01"},
			{Name: "May Day", Date: "2026-05-01"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, added, 2)

	// resubmitting one duplicate plus one new holiday only adds the new one
	added, err = svc.AddPredefinedHolidays(ctx, holiday.AddPredefinedHolidaysRequest{
		Holidays: []holiday.HolidayInput{
			{Name: "New Year", Date: "2026-01-01"},
			{Name: "Independence Day", Date: "2026-08-15"},
		},
	})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "Independence Day", added[0].Name)

	all, err := svc.ListPredefinedHolidays(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	t.Run("empty payload rejected", func(t *testing.T) {
		_, err := svc.AddPredefinedHolidays(ctx, holiday.AddPredefinedHolidaysRequest{})
		assert.Error(t, err)
	})
}
