package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rizaldyc/simm-backend/internal/auth"
	"github.com/rizaldyc/simm-backend/internal/model"
	"github.com/rizaldyc/simm-backend/internal/state"
)

// Common errors
var (
	ErrDuplicateSubmission = errors.New("attendance already recorded for this member, date and activity")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
)

// Service applies attendance mutations to the shared collections
type Service struct {
	st  *state.State
	now func() time.Time
}

// NewService creates a new attendance service
func NewService(st *state.State) *Service {
	return &Service{st: st, now: time.Now}
}

// Submit records a member's own attendance for today. At most one record
// may exist per (memberId, date, activityType); the check and the append
// run atomically against the collections.
func (s *Service) Submit(ctx context.Context, req *SubmitAttendanceRequest) (*model.Attendance, error) {
	activityType := req.ActivityType
	if activityType == "" {
		activityType = model.DefaultActivityType
	}

	record := model.Attendance{
		ID:           uuid.NewString(),
		MemberID:     req.MemberID,
		Date:         s.now().Format("2006-01-02"),
		ActivityType: activityType,
		Status:       model.AttendanceStatus(req.Status),
		Feedback:     req.Feedback,
	}

	err := s.st.Mutate(func(snap *model.Snapshot) error {
		for _, a := range snap.Attendance {
			if a.MemberID == record.MemberID && a.Date == record.Date && a.ActivityType == record.ActivityType {
				return ErrDuplicateSubmission
			}
		}
		snap.Attendance = append(snap.Attendance, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns attendance records visible to the actor, optionally
// filtered by date and activity type. Group leaders only see records of
// members in their own group; records with a dangling memberId are
// admin-only.
func (s *Service) List(ctx context.Context, actor auth.User, date, activityType string) []model.Attendance {
	snap := s.st.Snapshot()

	out := make([]model.Attendance, 0, len(snap.Attendance))
	for _, a := range snap.Attendance {
		if date != "" && a.Date != date {
			continue
		}
		if activityType != "" && a.ActivityType != activityType {
			continue
		}
		if !actor.IsAdmin() {
			m := snap.FindMember(a.MemberID)
			if m == nil || m.Group != actor.Group {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// Update partially merges the request onto an existing record
func (s *Service) Update(ctx context.Context, id string, req *UpdateAttendanceRequest) (*model.Attendance, error) {
	var updated model.Attendance
	err := s.st.Mutate(func(snap *model.Snapshot) error {
		for i := range snap.Attendance {
			if snap.Attendance[i].ID != id {
				continue
			}
			req.apply(&snap.Attendance[i])
			updated = snap.Attendance[i]
			return nil
		}
		return ErrAttendanceNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an attendance record
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.st.Mutate(func(snap *model.Snapshot) error {
		for i := range snap.Attendance {
			if snap.Attendance[i].ID != id {
				continue
			}
			snap.Attendance = append(snap.Attendance[:i], snap.Attendance[i+1:]...)
			return nil
		}
		return ErrAttendanceNotFound
	})
}
