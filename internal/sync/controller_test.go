package sync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizaldyc/simm-backend/internal/model"
	"github.com/rizaldyc/simm-backend/internal/state"
	"github.com/rizaldyc/simm-backend/internal/store"
)

// cloudRecorder is a fake spreadsheet endpoint recording fetches and pushes
type cloudRecorder struct {
	mu           sync.Mutex
	gets         int
	posts        [][]byte
	fetchBody    string
	fetchStatus  int
	fetchStarted chan struct{}
	fetchRelease chan struct{}
	startedOnce  sync.Once
}

func newCloudRecorder(fetchBody string) *cloudRecorder {
	return &cloudRecorder{fetchBody: fetchBody, fetchStatus: http.StatusOK}
}

func (c *cloudRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.mu.Lock()
		c.gets++
		c.mu.Unlock()
		if c.fetchStarted != nil {
			c.startedOnce.Do(func() { close(c.fetchStarted) })
		}
		if c.fetchRelease != nil {
			<-c.fetchRelease
		}
		if c.fetchStatus != http.StatusOK {
			w.WriteHeader(c.fetchStatus)
			return
		}
		w.Write([]byte(c.fetchBody))
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.posts = append(c.posts, body)
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}
}

func (c *cloudRecorder) postCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.posts)
}

func (c *cloudRecorder) getCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets
}

func (c *cloudRecorder) lastPost(t *testing.T) model.Snapshot {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.posts)

	var snap model.Snapshot
	require.NoError(t, json.Unmarshal(c.posts[len(c.posts)-1], &snap))
	return snap
}

func addMember(t *testing.T, st *state.State, id, name, group string) {
	t.Helper()
	err := st.Mutate(func(snap *model.Snapshot) error {
		snap.Members = append(snap.Members, model.Member{ID: id, FullName: name, Group: group})
		return nil
	})
	require.NoError(t, err)
}

func TestController_NoPushBeforeInitialized(t *testing.T) {
	cloud := newCloudRecorder(`{}`)
	srv := httptest.NewServer(cloud)
	defer srv.Close()

	st := state.New()
	ctrl := NewController(st, store.NewMemory(), NewGateway(srv.URL), 20*time.Millisecond)

	// Mutations before Start must never schedule a push, even with the
	// endpoint already configured.
	addMember(t, st, "m1", "Ani", "Wonokusumo 1")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, cloud.postCount(), "push before initialized")

	_ = ctrl // controller deliberately not started
}

func TestController_StartLoadsLocalThenRemote(t *testing.T) {
	remote := `{"members":[{"id":"r1","fullName":"Remote","group":"Kapas Jaya"}]}`
	cloud := newCloudRecorder(remote)
	srv := httptest.NewServer(cloud)
	defer srv.Close()

	mem := store.NewMemory()
	local, err := json.Marshal([]model.Member{{ID: "l1", FullName: "Local"}})
	require.NoError(t, err)
	require.NoError(t, mem.Save(context.Background(), store.KeyMembers, local))

	schedules, err := json.Marshal([]model.Schedule{{ID: "s1", Day: "Minggu", Time: "19:30", ActivityName: "Rutin"}})
	require.NoError(t, err)
	require.NoError(t, mem.Save(context.Background(), store.KeySchedules, schedules))

	st := state.New()
	ctrl := NewController(st, mem, NewGateway(srv.URL), time.Second)
	ctrl.Start(context.Background())

	snap := st.Snapshot()
	// Members came back from the cloud and replaced the local copy
	require.Len(t, snap.Members, 1)
	assert.Equal(t, "r1", snap.Members[0].ID)
	// Schedules were absent from the payload: local data retained
	require.Len(t, snap.Schedules, 1)
	assert.Equal(t, "s1", snap.Schedules[0].ID)

	status := ctrl.Status()
	assert.True(t, status.Initialized)
	assert.False(t, status.Syncing)
	assert.Empty(t, status.Error)
	assert.NotNil(t, status.LastSync)
}

func TestController_FetchFailureKeepsLocalState(t *testing.T) {
	cloud := newCloudRecorder(``)
	cloud.fetchStatus = http.StatusInternalServerError
	srv := httptest.NewServer(cloud)
	defer srv.Close()

	mem := store.NewMemory()
	local, err := json.Marshal([]model.Member{{ID: "l1", FullName: "Local"}})
	require.NoError(t, err)
	require.NoError(t, mem.Save(context.Background(), store.KeyMembers, local))

	st := state.New()
	ctrl := NewController(st, mem, NewGateway(srv.URL), time.Second)
	ctrl.Start(context.Background())

	snap := st.Snapshot()
	require.Len(t, snap.Members, 1)
	assert.Equal(t, "l1", snap.Members[0].ID)

	status := ctrl.Status()
	assert.True(t, status.Initialized, "remote failure must still initialize")
	assert.NotEmpty(t, status.Error)
}

func TestController_CorruptLocalValueTreatedAsAbsent(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Save(context.Background(), store.KeyMembers, []byte(`{not json`)))

	st := state.New()
	ctrl := NewController(st, mem, NewGateway(""), time.Second)
	ctrl.Start(context.Background())

	assert.Empty(t, st.Snapshot().Members)
	assert.True(t, ctrl.Status().Initialized)
}

func TestController_MutationPersistsSnapshotSynchronously(t *testing.T) {
	mem := store.NewMemory()
	st := state.New()
	ctrl := NewController(st, mem, NewGateway(""), time.Second)
	ctrl.Start(context.Background())

	addMember(t, st, "m1", "Ani", "Wonokusumo 1")

	raw, err := mem.Load(context.Background(), store.KeyMembers)
	require.NoError(t, err)
	require.NotNil(t, raw)

	var stored []model.Member
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, st.Snapshot().Members, stored)

	_ = ctrl
}

func TestController_LocalRoundTrip(t *testing.T) {
	mem := store.NewMemory()

	st := state.New()
	ctrl := NewController(st, mem, NewGateway(""), time.Second)
	ctrl.Start(context.Background())

	addMember(t, st, "m1", "Ani", "Wonokusumo 1")
	err := st.Mutate(func(snap *model.Snapshot) error {
		snap.Attendance = append(snap.Attendance, model.Attendance{
			ID: "a1", MemberID: "m1", Date: "2026-09-01", ActivityType: "Rutin", Status: model.AttendanceHadir,
		})
		snap.Activities = append(snap.Activities, model.Activity{ID: "act1", Name: "Pengajian"})
		snap.Schedules = append(snap.Schedules, model.Schedule{ID: "s1", Day: "Minggu", Time: "19:30", ActivityName: "Pengajian"})
		return nil
	})
	require.NoError(t, err)
	before := st.Snapshot()

	// Simulated restart with no remote reachable
	st2 := state.New()
	ctrl2 := NewController(st2, mem, NewGateway(""), time.Second)
	ctrl2.Start(context.Background())

	assert.Equal(t, before, st2.Snapshot())
	_ = ctrl
}

func TestController_DebounceCoalescesMutations(t *testing.T) {
	cloud := newCloudRecorder(`{}`)
	srv := httptest.NewServer(cloud)
	defer srv.Close()

	st := state.New()
	ctrl := NewController(st, store.NewMemory(), NewGateway(srv.URL), 100*time.Millisecond)
	ctrl.Start(context.Background())

	for i := 0; i < 5; i++ {
		addMember(t, st, string(rune('a'+i)), "Member", "Wonokusumo 1")
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return cloud.postCount() == 1 },
		2*time.Second, 10*time.Millisecond, "exactly one coalesced push")
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, cloud.postCount(), "no extra pushes after the quiet period")

	pushed := cloud.lastPost(t)
	assert.Len(t, pushed.Members, 5, "push carries the state of the last mutation")

	_ = ctrl
}

func TestController_ManualSyncBypassesDebounce(t *testing.T) {
	cloud := newCloudRecorder(`{}`)
	srv := httptest.NewServer(cloud)
	defer srv.Close()

	st := state.New()
	ctrl := NewController(st, store.NewMemory(), NewGateway(srv.URL), time.Hour)
	ctrl.Start(context.Background())

	addMember(t, st, "m1", "Ani", "Wonokusumo 1")
	require.NoError(t, ctrl.ManualSync(context.Background()))

	assert.Equal(t, 1, cloud.postCount())
	pushed := cloud.lastPost(t)
	assert.Len(t, pushed.Members, 1)
}

func TestController_ManualSyncBeforeInitialized(t *testing.T) {
	st := state.New()
	ctrl := NewController(st, store.NewMemory(), NewGateway("http://localhost:1"), time.Second)

	err := ctrl.ManualSync(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestController_PushFailureIsNonFatal(t *testing.T) {
	// Endpoint that dies after startup: fetch succeeds, pushes fail
	cloud := newCloudRecorder(`{}`)
	srv := httptest.NewServer(cloud)

	st := state.New()
	ctrl := NewController(st, store.NewMemory(), NewGateway(srv.URL), time.Hour)
	ctrl.Start(context.Background())
	srv.Close()

	addMember(t, st, "m1", "Ani", "Wonokusumo 1")
	err := ctrl.ManualSync(context.Background())
	assert.ErrorIs(t, err, ErrPushFailed)

	// Local state and durability are untouched by the failed push
	assert.Len(t, st.Snapshot().Members, 1)
	status := ctrl.Status()
	assert.True(t, status.Initialized)
	assert.NotEmpty(t, status.Error)
}

func TestController_EndpointChangeBlocksPushUntilFetchSettles(t *testing.T) {
	cloudA := newCloudRecorder(`{}`)
	srvA := httptest.NewServer(cloudA)
	defer srvA.Close()

	cloudB := newCloudRecorder(`{}`)
	cloudB.fetchStarted = make(chan struct{})
	cloudB.fetchRelease = make(chan struct{})
	srvB := httptest.NewServer(cloudB)
	defer srvB.Close()

	st := state.New()
	ctrl := NewController(st, store.NewMemory(), NewGateway(srvA.URL), time.Hour)
	ctrl.Start(context.Background())
	addMember(t, st, "m1", "Ani", "Wonokusumo 1")

	done := make(chan struct{})
	go func() {
		ctrl.SetEndpoint(context.Background(), srvB.URL)
		close(done)
	}()

	// While the fetch against the new endpoint is in flight, pushes are
	// blocked again: stale data must not reach the new endpoint.
	<-cloudB.fetchStarted
	err := ctrl.ManualSync(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, 0, cloudB.postCount())

	close(cloudB.fetchRelease)
	<-done

	// Fetch settled: pushes flow to the new endpoint again
	require.NoError(t, ctrl.ManualSync(context.Background()))
	assert.Equal(t, 1, cloudB.postCount())
	assert.Equal(t, 1, cloudB.getCount())
	assert.Equal(t, 0, cloudA.postCount())
}

func TestController_EndpointPersistedAndReloaded(t *testing.T) {
	cloud := newCloudRecorder(`{}`)
	srv := httptest.NewServer(cloud)
	defer srv.Close()

	mem := store.NewMemory()
	st := state.New()
	ctrl := NewController(st, mem, NewGateway(""), time.Second)
	ctrl.Start(context.Background())
	ctrl.SetEndpoint(context.Background(), srv.URL)

	// A restart without CLOUD_URL picks the persisted endpoint back up
	st2 := state.New()
	gw2 := NewGateway("")
	ctrl2 := NewController(st2, mem, gw2, time.Second)
	ctrl2.Start(context.Background())

	assert.Equal(t, srv.URL, gw2.Endpoint())
	assert.Equal(t, 2, cloud.getCount())
	_ = ctrl2
}
