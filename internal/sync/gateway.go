package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rizaldyc/simm-backend/internal/model"
)

// Common errors
var (
	ErrNoEndpoint  = errors.New("no cloud endpoint configured")
	ErrFetchFailed = errors.New("failed to fetch from cloud endpoint")
	ErrPushFailed  = errors.New("failed to push to cloud endpoint")
)

// RemotePayload is the snapshot shape the cloud endpoint speaks. A nil
// collection means the endpoint did not return it and the local collection
// must be left unchanged, never cleared.
type RemotePayload struct {
	Members    []model.Member     `json:"members"`
	Attendance []model.Attendance `json:"attendance"`
	Activities []model.Activity   `json:"activities"`
	Schedules  []model.Schedule   `json:"schedules"`
}

// pushedAttendance is an attendance row denormalized for the spreadsheet,
// which has no join capability and must render rows on its own.
type pushedAttendance struct {
	model.Attendance
	FullName string `json:"fullName"`
	Group    string `json:"group"`
}

type pushPayload struct {
	Members    []model.Member     `json:"members"`
	Attendance []pushedAttendance `json:"attendance"`
	Activities []model.Activity   `json:"activities"`
	Schedules  []model.Schedule   `json:"schedules"`
}

// Gateway is the thin HTTP client for the spreadsheet-backed endpoint:
// GET fetches a full snapshot, POST pushes one.
type Gateway struct {
	mu       sync.RWMutex
	endpoint string
	client   *http.Client
}

// NewGateway creates a gateway against the given endpoint URL, which may
// be empty until configured.
func NewGateway(endpoint string) *Gateway {
	return &Gateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Endpoint returns the currently configured URL
func (g *Gateway) Endpoint() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.endpoint
}

// SetEndpoint replaces the configured URL
func (g *Gateway) SetEndpoint(url string) {
	g.mu.Lock()
	g.endpoint = url
	g.mu.Unlock()
}

// Fetch retrieves the remote snapshot. Decoding into RemotePayload is the
// schema boundary: unknown fields are dropped and absent collections stay nil.
func (g *Gateway) Fetch(ctx context.Context) (*RemotePayload, error) {
	endpoint := g.Endpoint()
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	var payload RemotePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return &payload, nil
}

// Push sends the full snapshot with attendance enriched. The endpoint is a
// one-way sink: the body is sent as text/plain and the response is
// discarded unread, matching endpoints that cannot serve readable
// cross-origin responses. Only transport errors fail a push.
func (g *Gateway) Push(ctx context.Context, snap model.Snapshot) error {
	endpoint := g.Endpoint()
	if endpoint == "" {
		return ErrNoEndpoint
	}

	body, err := json.Marshal(buildPushPayload(snap))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPushFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPushFailed, err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPushFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return nil
}

// buildPushPayload denormalizes each attendance row with the member's
// fullName and group, falling back to "N/A" for dangling memberId
// references, and defaults an empty activityType to Rutin.
func buildPushPayload(snap model.Snapshot) pushPayload {
	enriched := make([]pushedAttendance, len(snap.Attendance))
	for i, att := range snap.Attendance {
		row := pushedAttendance{Attendance: att, FullName: "N/A", Group: "N/A"}
		if member := snap.FindMember(att.MemberID); member != nil {
			row.FullName = member.FullName
			row.Group = member.Group
		}
		if row.ActivityType == "" {
			row.ActivityType = model.DefaultActivityType
		}
		enriched[i] = row
	}

	return pushPayload{
		Members:    snap.Members,
		Attendance: enriched,
		Activities: snap.Activities,
		Schedules:  snap.Schedules,
	}
}
