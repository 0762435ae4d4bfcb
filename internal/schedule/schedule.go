package schedule

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rizaldyc/simm-backend/internal/model"
	"github.com/rizaldyc/simm-backend/internal/state"
)

// ErrScheduleNotFound is returned when the id resolves to nothing
var ErrScheduleNotFound = errors.New("schedule not found")

// CreateScheduleRequest represents the request to add a calendar entry
type CreateScheduleRequest struct {
	Day          string `json:"day" validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required"`
	ActivityName string `json:"activityName" validate:"required,min=1,max=100"`
	Location     string `json:"location"`
}

// UpdateScheduleRequest represents a partial-merge update
type UpdateScheduleRequest struct {
	Day          *string `json:"day,omitempty" validate:"omitempty,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
	Date         *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time         *string `json:"time,omitempty"`
	ActivityName *string `json:"activityName,omitempty" validate:"omitempty,min=1,max=100"`
	Location     *string `json:"location,omitempty"`
}

// Service applies schedule mutations to the shared collections. Entries
// are purely descriptive; nothing links them to attendance.
type Service struct {
	st *state.State
}

// NewService creates a new schedule service
func NewService(st *state.State) *Service {
	return &Service{st: st}
}

// List returns all schedule entries
func (s *Service) List(ctx context.Context) []model.Schedule {
	return s.st.Snapshot().Schedules
}

// Create adds a new schedule entry
func (s *Service) Create(ctx context.Context, req *CreateScheduleRequest) (*model.Schedule, error) {
	entry := model.Schedule{
		ID:           uuid.NewString(),
		Day:          req.Day,
		Date:         req.Date,
		Time:         req.Time,
		ActivityName: req.ActivityName,
		Location:     req.Location,
	}
	err := s.st.Mutate(func(snap *model.Snapshot) error {
		snap.Schedules = append(snap.Schedules, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update partially merges the request onto an existing entry
func (s *Service) Update(ctx context.Context, id string, req *UpdateScheduleRequest) (*model.Schedule, error) {
	var updated model.Schedule
	err := s.st.Mutate(func(snap *model.Snapshot) error {
		for i := range snap.Schedules {
			if snap.Schedules[i].ID != id {
				continue
			}
			if req.Day != nil {
				snap.Schedules[i].Day = *req.Day
			}
			if req.Date != nil {
				snap.Schedules[i].Date = *req.Date
			}
			if req.Time != nil {
				snap.Schedules[i].Time = *req.Time
			}
			if req.ActivityName != nil {
				snap.Schedules[i].ActivityName = *req.ActivityName
			}
			if req.Location != nil {
				snap.Schedules[i].Location = *req.Location
			}
			updated = snap.Schedules[i]
			return nil
		}
		return ErrScheduleNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a schedule entry
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.st.Mutate(func(snap *model.Snapshot) error {
		for i := range snap.Schedules {
			if snap.Schedules[i].ID != id {
				continue
			}
			snap.Schedules = append(snap.Schedules[:i], snap.Schedules[i+1:]...)
			return nil
		}
		return ErrScheduleNotFound
	})
}
