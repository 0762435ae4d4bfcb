package sync

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/rizaldyc/simm-backend/internal/model"
	"github.com/rizaldyc/simm-backend/internal/state"
	"github.com/rizaldyc/simm-backend/internal/store"
)

// ErrNotInitialized is returned when a push is requested before the
// startup fetch has settled
var ErrNotInitialized = errors.New("sync not initialized yet")

// DefaultDebounce is the quiet period after the last mutation before a
// push fires
const DefaultDebounce = 5 * time.Second

// Status is the sync state exposed to the dashboard
type Status struct {
	Initialized bool       `json:"initialized"`
	Syncing     bool       `json:"isSyncing"`
	LastSync    *time.Time `json:"lastSync"`
	Error       string     `json:"errorSync,omitempty"`
	Endpoint    string     `json:"endpoint,omitempty"`
}

// Controller reconciles the in-memory collections with the local store and
// the cloud endpoint. Startup ordering is local load, then remote fetch,
// then initialized; no push of any kind may happen before initialized,
// otherwise an empty local cache could overwrite existing remote data the
// moment the application opens.
//
// Known limitation: two devices editing concurrently overwrite each other
// at full-snapshot granularity (last write wins). Accepted scope boundary.
type Controller struct {
	st       *state.State
	store    store.Store
	gw       *Gateway
	debounce time.Duration

	mu          sync.Mutex
	timer       *time.Timer
	initialized bool
	syncing     bool
	lastSync    time.Time
	syncErr     string
	pushing     bool
	pushPending bool
}

// NewController wires the controller as the state observer
func NewController(st *state.State, str store.Store, gw *Gateway, debounce time.Duration) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	c := &Controller{st: st, store: str, gw: gw, debounce: debounce}
	st.OnChange(c.onMutation)
	return c
}

// Start loads whatever the local store holds, then attempts the remote
// fetch. The controller becomes initialized regardless of the fetch
// outcome: a dead endpoint degrades to local-only operation, it never
// blocks startup.
func (c *Controller) Start(ctx context.Context) {
	c.loadLocal(ctx)
	c.refresh(ctx)
}

// Status returns the current sync state
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Status{
		Initialized: c.initialized,
		Syncing:     c.syncing,
		Error:       c.syncErr,
		Endpoint:    c.gw.Endpoint(),
	}
	if !c.lastSync.IsZero() {
		t := c.lastSync
		s.LastSync = &t
	}
	return s
}

// ManualSync pushes the current snapshot immediately, bypassing the
// debounce timer. The initialized gate still applies.
func (c *Controller) ManualSync(ctx context.Context) error {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return ErrNotInitialized
	}
	if c.gw.Endpoint() == "" {
		c.mu.Unlock()
		return ErrNoEndpoint
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	return c.push(ctx)
}

// SetEndpoint switches the cloud URL and re-arms the controller: pushes
// are blocked again until a fresh fetch against the new endpoint has
// settled, so data from the previous endpoint is never pushed to the new
// one.
func (c *Controller) SetEndpoint(ctx context.Context, url string) {
	if err := c.store.Save(ctx, store.KeyWebAppURL, []byte(url)); err != nil {
		log.Printf("sync: failed to persist endpoint URL: %v", err)
	}

	c.mu.Lock()
	c.initialized = false
	c.pushPending = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.gw.SetEndpoint(url)
	c.refresh(ctx)
}

// loadLocal populates the collections from the local store. Each key is
// independently optional; corrupt values are treated as absent.
func (c *Controller) loadLocal(ctx context.Context) {
	var snap model.Snapshot
	loadCollection(ctx, c.store, store.KeyMembers, &snap.Members)
	loadCollection(ctx, c.store, store.KeyAttendance, &snap.Attendance)
	loadCollection(ctx, c.store, store.KeyActivities, &snap.Activities)
	loadCollection(ctx, c.store, store.KeySchedules, &snap.Schedules)
	c.st.Replace(snap)

	// Endpoint from config wins over the persisted one
	if c.gw.Endpoint() == "" {
		if raw, err := c.store.Load(ctx, store.KeyWebAppURL); err == nil && len(raw) > 0 {
			c.gw.SetEndpoint(string(raw))
		}
	}
}

// refresh runs the remote fetch and marks the controller initialized when
// it settles, success or failure.
func (c *Controller) refresh(ctx context.Context) {
	c.mu.Lock()
	c.syncing = true
	c.syncErr = ""
	c.mu.Unlock()

	endpoint := c.gw.Endpoint()
	if endpoint == "" {
		c.finishRefresh("")
		return
	}

	payload, err := c.gw.Fetch(ctx)
	if err != nil {
		log.Printf("sync: fetch from %s failed: %v", endpoint, err)
		c.finishRefresh("Cloud belum siap. Pastikan URL sudah benar!")
		return
	}

	// Each returned collection fully replaces its local counterpart;
	// absent collections keep the local data.
	snap := c.st.Snapshot()
	if payload.Members != nil {
		snap.Members = payload.Members
	}
	if payload.Attendance != nil {
		snap.Attendance = payload.Attendance
	}
	if payload.Activities != nil {
		snap.Activities = payload.Activities
	}
	if payload.Schedules != nil {
		snap.Schedules = payload.Schedules
	}
	c.st.Replace(snap)
	c.persist(ctx, snap)

	c.mu.Lock()
	c.lastSync = time.Now()
	c.mu.Unlock()
	c.finishRefresh("")
}

func (c *Controller) finishRefresh(errMsg string) {
	c.mu.Lock()
	c.syncing = false
	c.syncErr = errMsg
	c.initialized = true
	c.mu.Unlock()
}

// onMutation is the state observer: persist the snapshot synchronously,
// then reset the debounce timer so only the final coalesced snapshot of a
// burst ever goes out.
func (c *Controller) onMutation() {
	snap := c.st.Snapshot()
	c.persist(context.Background(), snap)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized || c.gw.Endpoint() == "" {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		if err := c.push(context.Background()); err != nil {
			log.Printf("sync: debounced push failed: %v", err)
		}
	})
}

// push sends the current snapshot, keeping at most one push in flight. A
// request arriving mid-flight supersedes any already pending one; a single
// follow-up push with the then-current snapshot runs when the in-flight
// push finishes.
func (c *Controller) push(ctx context.Context) error {
	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return ErrNotInitialized
	}
	if c.pushing {
		c.pushPending = true
		c.mu.Unlock()
		return nil
	}
	c.pushing = true
	c.syncing = true
	c.mu.Unlock()

	var lastErr error
	for {
		snap := c.st.Snapshot()
		err := c.gw.Push(ctx, snap)

		c.mu.Lock()
		if err != nil {
			lastErr = err
			c.syncErr = "Gagal sinkron ke Spreadsheet."
			log.Printf("sync: push failed: %v", err)
		} else {
			lastErr = nil
			c.syncErr = ""
			c.lastSync = time.Now()
		}
		if c.pushPending && c.initialized {
			c.pushPending = false
			c.mu.Unlock()
			continue
		}
		c.pushing = false
		c.syncing = false
		c.mu.Unlock()
		return lastErr
	}
}

// persist writes all four collections to the local store. Store failures
// are logged and swallowed: local durability is best effort and must never
// fail a mutation.
func (c *Controller) persist(ctx context.Context, snap model.Snapshot) {
	saveCollection(ctx, c.store, store.KeyMembers, snap.Members)
	saveCollection(ctx, c.store, store.KeyAttendance, snap.Attendance)
	saveCollection(ctx, c.store, store.KeyActivities, snap.Activities)
	saveCollection(ctx, c.store, store.KeySchedules, snap.Schedules)
}

func loadCollection[T any](ctx context.Context, str store.Store, key string, dst *[]T) {
	raw, err := str.Load(ctx, key)
	if err != nil {
		log.Printf("sync: failed to load %s: %v", key, err)
		return
	}
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// Corrupt local data fails safe: treated as absent
		log.Printf("sync: corrupt value under %s, ignoring: %v", key, err)
		*dst = nil
	}
}

func saveCollection[T any](ctx context.Context, str store.Store, key string, value []T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("sync: failed to encode %s: %v", key, err)
		return
	}
	if err := str.Save(ctx, key, raw); err != nil {
		log.Printf("sync: failed to save %s: %v", key, err)
	}
}
