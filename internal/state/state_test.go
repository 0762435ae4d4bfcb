package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizaldyc/simm-backend/internal/model"
)

func TestState_MutateNotifiesOnce(t *testing.T) {
	st := New()

	var calls int
	st.OnChange(func() { calls++ })

	err := st.Mutate(func(snap *model.Snapshot) error {
		snap.Members = append(snap.Members, model.Member{ID: "m1", FullName: "Ani"})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestState_MutateErrorSuppressesNotify(t *testing.T) {
	st := New()

	var calls int
	st.OnChange(func() { calls++ })

	boom := errors.New("boom")
	err := st.Mutate(func(snap *model.Snapshot) error {
		snap.Members = append(snap.Members, model.Member{ID: "m1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, calls, "a rejected mutation must not reach the observer")
}

func TestState_ReplaceDoesNotNotify(t *testing.T) {
	st := New()

	var calls int
	st.OnChange(func() { calls++ })

	st.Replace(model.Snapshot{Members: []model.Member{{ID: "m1"}}})
	assert.Zero(t, calls)
	assert.Len(t, st.Snapshot().Members, 1)
}

func TestState_SnapshotIsDeepCopy(t *testing.T) {
	st := New()
	st.Replace(model.Snapshot{Members: []model.Member{{ID: "m1", FullName: "Ani"}}})

	snap := st.Snapshot()
	snap.Members[0].FullName = "mutated"

	assert.Equal(t, "Ani", st.Snapshot().Members[0].FullName)
}

func TestState_ObserverRunsOutsideLock(t *testing.T) {
	st := New()

	// Re-reading from inside the observer deadlocks if it still held the
	// write lock
	st.OnChange(func() {
		_ = st.Snapshot()
	})

	err := st.Mutate(func(snap *model.Snapshot) error {
		snap.Members = append(snap.Members, model.Member{ID: "m1"})
		return nil
	})
	require.NoError(t, err)
}
