package attendance

import "github.com/rizaldyc/simm-backend/internal/model"

// SubmitAttendanceRequest is the self-service submission payload. The date
// is never taken from the client; it is always the server's today.
type SubmitAttendanceRequest struct {
	MemberID     string `json:"memberId" validate:"required"`
	ActivityType string `json:"activityType"`
	Status       string `json:"status" validate:"required,oneof=Hadir Izin Sakit Alfa"`
	Feedback     string `json:"feedback"`
}

// UpdateAttendanceRequest represents a partial-merge update to a record
type UpdateAttendanceRequest struct {
	Date         *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ActivityType *string `json:"activityType,omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=Hadir Izin Sakit Alfa"`
	Feedback     *string `json:"feedback,omitempty"`
}

// apply merges the non-nil fields onto the record
func (r *UpdateAttendanceRequest) apply(a *model.Attendance) {
	if r.Date != nil {
		a.Date = *r.Date
	}
	if r.ActivityType != nil {
		a.ActivityType = *r.ActivityType
	}
	if r.Status != nil {
		a.Status = model.AttendanceStatus(*r.Status)
	}
	if r.Feedback != nil {
		a.Feedback = *r.Feedback
	}
}
