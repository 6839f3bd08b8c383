package holiday

import (
	"context"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.PredefinedHolidayRepository
	holiday.SelectedHolidayRepository
}

func NewHolidayService(
	predefinedRepo holiday.PredefinedHolidayRepository,
	selectedRepo holiday.SelectedHolidayRepository,
) holiday.HolidayService {
	return &HolidayServiceImpl{
		PredefinedHolidayRepository: predefinedRepo,
		SelectedHolidayRepository:   selectedRepo,
	}
}

func toEntryResponses(entries []holiday.HolidayEntry) []holiday.HolidayEntryResponse {
	result := make([]holiday.HolidayEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, holiday.HolidayEntryResponse{
			ID:       entry.ID,
			Name:     entry.Name,
			Date:     entry.Date.Format("2006-01-02"),
			IsCustom: entry.IsCustom,
		})
	}
	return result
}

// AddPredefinedHolidays implements holiday.HolidayService. Entries already
// present with the same name and date are skipped, not errored.
func (s *HolidayServiceImpl) AddPredefinedHolidays(ctx context.Context, req holiday.AddPredefinedHolidaysRequest) ([]holiday.PredefinedHolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	added := make([]holiday.PredefinedHolidayResponse, 0, len(req.Holidays))
	for _, input := range req.Holidays {
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, err
		}

		exists, err := s.PredefinedHolidayRepository.Exists(ctx, input.Name, date)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		created, err := s.PredefinedHolidayRepository.Create(ctx, holiday.PredefinedHoliday{
			Name: input.Name,
			Date: date,
		})
		if err != nil {
			return nil, err
		}
		added = append(added, holiday.PredefinedHolidayResponse{
			ID:   created.ID,
			Name: created.Name,
			Date: created.Date.Format("2006-01-02"),
		})
	}

	return added, nil
}

// ListPredefinedHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListPredefinedHolidays(ctx context.Context) ([]holiday.PredefinedHolidayResponse, error) {
	holidays, err := s.PredefinedHolidayRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]holiday.PredefinedHolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, holiday.PredefinedHolidayResponse{
			ID:   h.ID,
			Name: h.Name,
			Date: h.Date.Format("2006-01-02"),
		})
	}

	return result, nil
}

// DeletePredefinedHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeletePredefinedHoliday(ctx context.Context, id string) error {
	return s.PredefinedHolidayRepository.Delete(ctx, id)
}

// SelectHolidays implements holiday.HolidayService. The whole selection is
// replaced; the previous list does not survive a partial submit.
func (s *HolidayServiceImpl) SelectHolidays(ctx context.Context, req holiday.SelectHolidaysRequest) ([]holiday.HolidayEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	selection := holiday.SelectedHoliday{EmployeeID: req.EmployeeID}
	for _, input := range req.SelectedHolidays {
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, err
		}
		selection.Entries = append(selection.Entries, holiday.HolidayEntry{
			Name:     input.Name,
			Date:     date,
			IsCustom: input.IsCustom,
		})
	}

	saved, err := s.SelectedHolidayRepository.Upsert(ctx, selection)
	if err != nil {
		return nil, err
	}

	return toEntryResponses(saved.Entries), nil
}

// GetSelectedHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) GetSelectedHolidays(ctx context.Context, employeeID string) ([]holiday.HolidayEntryResponse, error) {
	selection, err := s.SelectedHolidayRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return toEntryResponses(selection.Entries), nil
}

// DeleteCustomHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteCustomHoliday(ctx context.Context, employeeID string, entryID string) ([]holiday.HolidayEntryResponse, error) {
	selection, err := s.SelectedHolidayRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	kept := selection.Entries[:0]
	found := false
	for _, entry := range selection.Entries {
		if entry.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return nil, holiday.ErrHolidayEntryNotFound
	}
	selection.Entries = kept

	saved, err := s.SelectedHolidayRepository.Upsert(ctx, selection)
	if err != nil {
		return nil, err
	}

	return toEntryResponses(saved.Entries), nil
}
