package member

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rizaldyc/simm-backend/internal/auth"
	"github.com/rizaldyc/simm-backend/internal/model"
	"github.com/rizaldyc/simm-backend/internal/state"
)

// Common errors
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrWrongGroup     = errors.New("member belongs to another group")
)

// Service applies member mutations to the shared collections. A group
// leader only ever sees and edits members of their own group; the member's
// group is forced to the leader's group on create unless the actor is
// admin.
type Service struct {
	st *state.State
}

// NewService creates a new member service
func NewService(st *state.State) *Service {
	return &Service{st: st}
}

// List returns the members visible to the actor, scoped to their group
// for non-admin roles.
func (s *Service) List(ctx context.Context, actor auth.User) []model.Member {
	members := s.st.Snapshot().Members
	if actor.IsAdmin() {
		return members
	}

	scoped := make([]model.Member, 0, len(members))
	for _, m := range members {
		if m.Group == actor.Group {
			scoped = append(scoped, m)
		}
	}
	return scoped
}

// ListActive returns members whose activity status is Aktif, across all
// groups. Used by the public self-service attendance form.
func (s *Service) ListActive(ctx context.Context) []model.Member {
	members := s.st.Snapshot().Members
	active := make([]model.Member, 0, len(members))
	for _, m := range members {
		if m.ActivityStatus == model.StatusAktif {
			active = append(active, m)
		}
	}
	return active
}

// Create registers a new member
func (s *Service) Create(ctx context.Context, actor auth.User, req *CreateMemberRequest) (*model.Member, error) {
	m := model.Member{
		ID:             uuid.NewString(),
		FullName:       req.FullName,
		Gender:         model.Gender(req.Gender),
		Whatsapp:       req.Whatsapp,
		TTL:            req.TTL,
		Address:        req.Address,
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		BusyStatus:     model.BusyStatus(req.BusyStatus),
		ActivityStatus: model.ActivityStatus(req.ActivityStatus),
		Education:      req.Education,
		Category:       req.Category,
		Group:          req.Group,
	}
	if m.ActivityStatus == "" {
		m.ActivityStatus = model.StatusAktif
	}
	if !actor.IsAdmin() {
		m.Group = actor.Group
	}

	err := s.st.Mutate(func(snap *model.Snapshot) error {
		snap.Members = append(snap.Members, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update partially merges the request onto an existing member
func (s *Service) Update(ctx context.Context, actor auth.User, id string, req *UpdateMemberRequest) (*model.Member, error) {
	var updated model.Member
	err := s.st.Mutate(func(snap *model.Snapshot) error {
		for i := range snap.Members {
			if snap.Members[i].ID != id {
				continue
			}
			if !actor.IsAdmin() && snap.Members[i].Group != actor.Group {
				return ErrWrongGroup
			}
			req.apply(&snap.Members[i])
			if !actor.IsAdmin() {
				snap.Members[i].Group = actor.Group
			}
			updated = snap.Members[i]
			return nil
		}
		return ErrMemberNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a member. Attendance rows keep their now-dangling
// memberId; lookups resolve them to N/A at enrichment time.
func (s *Service) Delete(ctx context.Context, actor auth.User, id string) error {
	return s.st.Mutate(func(snap *model.Snapshot) error {
		for i := range snap.Members {
			if snap.Members[i].ID != id {
				continue
			}
			if !actor.IsAdmin() && snap.Members[i].Group != actor.Group {
				return ErrWrongGroup
			}
			snap.Members = append(snap.Members[:i], snap.Members[i+1:]...)
			return nil
		}
		return ErrMemberNotFound
	})
}
