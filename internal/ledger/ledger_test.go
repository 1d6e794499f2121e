package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	mu     sync.Mutex
	calls  []map[int64]int
	failOn int
}

func (p *recordingPersister) ApplyOccupancyDeltas(_ context.Context, deltas map[int64]int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, deltas)
	if p.failOn > 0 && len(p.calls) == p.failOn {
		return errors.New("connection refused")
	}
	return nil
}

func newLedger(p Persister) *Ledger {
	l := New(p)
	l.Load([]*models.Shelter{
		{ID: 1, Capacity: 10, Occupancy: 0},
		{ID: 2, Capacity: 5, Occupancy: 4},
	})
	return l
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		occupancy, capacity int
		want                models.ShelterStatus
	}{
		{10, 10, models.ShelterFull},
		{0, 0, models.ShelterFull},
		{8, 10, models.ShelterAlmostFull},
		{5, 10, models.ShelterModerate},
		{4, 10, models.ShelterAvailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.occupancy, tt.capacity), "occupancy=%d capacity=%d", tt.occupancy, tt.capacity)
	}
}

func TestReserve_InsufficientCapacity(t *testing.T) {
	l := newLedger(nil)
	ctx := context.Background()

	require.NoError(t, l.Reserve(ctx, 2, 1))
	err := l.Reserve(ctx, 2, 1)

	assert.True(t, apperr.Is(err, apperr.KindConflict))
	occ, capacity, ok := l.Occupancy(2)
	require.True(t, ok)
	assert.Equal(t, capacity, occ)
}

func TestReserve_UnknownShelter(t *testing.T) {
	l := newLedger(nil)
	err := l.Reserve(context.Background(), 99, 1)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestRelease_FloorsAtZero(t *testing.T) {
	l := newLedger(nil)
	require.NoError(t, l.Release(context.Background(), 2, 10))
	occ, _, _ := l.Occupancy(2)
	assert.Equal(t, 0, occ)
	status, err := l.Status(2)
	require.NoError(t, err)
	assert.Equal(t, models.ShelterAvailable, status)
}

func TestRun_ReservationsVisibleWithinRun(t *testing.T) {
	l := newLedger(nil)

	err := l.Run(context.Background(), func(tx *Tx) error {
		require.NoError(t, tx.Reserve(1, 6))
		assert.Equal(t, 4, tx.Remaining(1))
		assert.Error(t, tx.Reserve(1, 5))
		return tx.Reserve(1, 4)
	})

	require.NoError(t, err)
	assert.Equal(t, 0, l.Remaining(1))
}

func TestRun_FnErrorDiscardsReservations(t *testing.T) {
	l := newLedger(nil)

	err := l.Run(context.Background(), func(tx *Tx) error {
		require.NoError(t, tx.Reserve(1, 3))
		return errors.New("abort")
	})

	assert.EqualError(t, err, "abort")
	assert.Equal(t, 10, l.Remaining(1))
}

func TestRun_PersistFailureKeepsCounters(t *testing.T) {
	p := &recordingPersister{failOn: 1}
	l := newLedger(p)

	err := l.Run(context.Background(), func(tx *Tx) error {
		return tx.Reserve(1, 3)
	})

	assert.True(t, apperr.Is(err, apperr.KindPersistenceFailure))
	assert.Equal(t, 10, l.Remaining(1))
	require.Len(t, p.calls, 1)
	assert.Equal(t, map[int64]int{1: 3}, p.calls[0])
}

func TestReserve_ConcurrentNeverOverbooks(t *testing.T) {
	l := newLedger(&recordingPersister{})
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.Reserve(ctx, 1, 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	occ, capacity, _ := l.Occupancy(1)
	assert.LessOrEqual(t, occ, capacity)
}

func TestEnsure_KeepsTrackedCounters(t *testing.T) {
	l := newLedger(&recordingPersister{})
	require.NoError(t, l.Reserve(context.Background(), 1, 4))

	l.Ensure([]*models.Shelter{
		{ID: 1, Capacity: 10, Occupancy: 0},
		{ID: 9, Capacity: 3, Occupancy: 1},
	})

	occ, _, _ := l.Occupancy(1)
	assert.Equal(t, 4, occ)
	assert.Equal(t, 2, l.Remaining(9))
}
