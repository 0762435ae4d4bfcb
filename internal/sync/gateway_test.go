package sync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizaldyc/simm-backend/internal/model"
)

func TestGateway_PushEnrichesAttendance(t *testing.T) {
	var (
		gotBody        []byte
		gotContentType string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	snap := model.Snapshot{
		Members: []model.Member{{ID: "m1", FullName: "Ani", Group: "G1"}},
		Attendance: []model.Attendance{
			{ID: "a1", MemberID: "m1", Date: "2026-09-01", ActivityType: "Rutin", Status: model.AttendanceHadir},
			{ID: "a2", MemberID: "ghost", Date: "2026-09-01", Status: model.AttendanceIzin},
		},
	}

	gw := NewGateway(srv.URL)
	require.NoError(t, gw.Push(context.Background(), snap))

	assert.Equal(t, "text/plain", gotContentType)

	var payload struct {
		Attendance []struct {
			model.Attendance
			FullName string `json:"fullName"`
			Group    string `json:"group"`
		} `json:"attendance"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	require.Len(t, payload.Attendance, 2)

	resolved := payload.Attendance[0]
	assert.Equal(t, "Ani", resolved.FullName)
	assert.Equal(t, "G1", resolved.Group)
	assert.Equal(t, "Rutin", resolved.ActivityType)

	// Dangling memberId resolves to the sentinel, empty activityType defaults
	dangling := payload.Attendance[1]
	assert.Equal(t, "N/A", dangling.FullName)
	assert.Equal(t, "N/A", dangling.Group)
	assert.Equal(t, "Rutin", dangling.ActivityType)
}

func TestGateway_PushIgnoresResponseStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL)
	// The push transport is one-way: the response is never interpreted
	assert.NoError(t, gw.Push(context.Background(), model.Snapshot{}))
}

func TestGateway_FetchPartialPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"members":[{"id":"m1","fullName":"Ani"}]}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL)
	payload, err := gw.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, payload.Members, 1)
	assert.Equal(t, "m1", payload.Members[0].ID)
	// Absent collections stay nil, meaning "leave local data unchanged"
	assert.Nil(t, payload.Attendance)
	assert.Nil(t, payload.Activities)
	assert.Nil(t, payload.Schedules)
}

func TestGateway_FetchFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL)
	_, err := gw.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)

	srvBadJSON := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srvBadJSON.Close()

	gw.SetEndpoint(srvBadJSON.URL)
	_, err = gw.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestGateway_NoEndpoint(t *testing.T) {
	gw := NewGateway("")

	_, err := gw.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrNoEndpoint)

	err = gw.Push(context.Background(), model.Snapshot{})
	assert.ErrorIs(t, err, ErrNoEndpoint)
}
