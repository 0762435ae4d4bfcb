package activity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rizaldyc/simm-backend/internal/model"
	"github.com/rizaldyc/simm-backend/internal/state"
)

// ErrActivityNotFound is returned when the id resolves to nothing
var ErrActivityNotFound = errors.New("activity not found")

// CreateActivityRequest represents the request to create a named activity
type CreateActivityRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateActivityRequest represents a partial-merge update
type UpdateActivityRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// Service applies activity mutations to the shared collections. Activities
// are referenced by name from attendance rows, a loose coupling: renaming
// or deleting one leaves old rows pointing at the old name.
type Service struct {
	st *state.State
}

// NewService creates a new activity service
func NewService(st *state.State) *Service {
	return &Service{st: st}
}

// List returns all activities
func (s *Service) List(ctx context.Context) []model.Activity {
	return s.st.Snapshot().Activities
}

// Create adds a new activity
func (s *Service) Create(ctx context.Context, req *CreateActivityRequest) (*model.Activity, error) {
	a := model.Activity{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	err := s.st.Mutate(func(snap *model.Snapshot) error {
		snap.Activities = append(snap.Activities, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update partially merges the request onto an existing activity
func (s *Service) Update(ctx context.Context, id string, req *UpdateActivityRequest) (*model.Activity, error) {
	var updated model.Activity
	err := s.st.Mutate(func(snap *model.Snapshot) error {
		for i := range snap.Activities {
			if snap.Activities[i].ID != id {
				continue
			}
			if req.Name != nil {
				snap.Activities[i].Name = *req.Name
			}
			if req.Description != nil {
				snap.Activities[i].Description = *req.Description
			}
			updated = snap.Activities[i]
			return nil
		}
		return ErrActivityNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an activity
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.st.Mutate(func(snap *model.Snapshot) error {
		for i := range snap.Activities {
			if snap.Activities[i].ID != id {
				continue
			}
			snap.Activities = append(snap.Activities[:i], snap.Activities[i+1:]...)
			return nil
		}
		return ErrActivityNotFound
	})
}
