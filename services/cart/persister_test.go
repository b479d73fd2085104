package cart

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snapshotRepo "tripcart/database/repository/snapshot"
	"tripcart/models"
)

type failingWriter struct{ err error }

func (f failingWriter) Save(context.Context, string, []byte) error { return f.err }

type blockingWriter struct {
	mu      sync.Mutex
	release chan struct{}
	saved   [][]byte
}

func (b *blockingWriter) Save(ctx context.Context, _ string, data []byte) error {
	<-b.release
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saved = append(b.saved, data)
	return nil
}

func TestPersister_RoundTripsThroughRepository(t *testing.T) {
	ctx := context.Background()
	repo := snapshotRepo.NewMemorySnapshotRepo()

	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	tour := time.Date(2026, 3, 11, 6, 30, 0, 0, time.UTC)

	dated := stay("h1", 4500)
	dated.CheckIn, dated.CheckOut = &checkIn, &checkOut
	walk := activity(7, 1200)
	walk.Date = &tour
	rating, distance := 4.7, 1.25
	garden := suggestion("s1", true)
	garden.Rating, garden.Distance = &rating, &distance

	store, persister := Open(ctx, repo, "trip-cart-storage", nil)
	require.NoError(t, store.AddAccommodation(dated))
	require.NoError(t, store.AddAccommodation(stay("h2", 0)))
	require.NoError(t, store.AddExperience(walk))
	require.NoError(t, store.AddNearbySuggestion(garden))
	want := store.Snapshot()
	require.NoError(t, persister.Close(ctx))

	restored, next := Open(ctx, repo, "trip-cart-storage", nil)
	defer next.Close(ctx)

	got := restored.Snapshot()
	assert.Equal(t, want, got)

	h1, ok := restored.Accommodation("h1")
	require.True(t, ok)
	require.NotNil(t, h1.CheckIn)
	require.NotNil(t, h1.CheckOut)
	assert.True(t, checkIn.Equal(*h1.CheckIn))
	assert.True(t, checkOut.Equal(*h1.CheckOut))
	h2, _ := restored.Accommodation("h2")
	assert.Nil(t, h2.CheckIn)

	exp, ok := restored.Experience(7)
	require.True(t, ok)
	require.NotNil(t, exp.Date)
	assert.True(t, tour.Equal(*exp.Date))

	assert.Equal(t, 5700.0, restored.TotalAmount())
	assert.Equal(t, 4, restored.TotalItems())
}

func TestPersister_RejectedNonFiniteAmountDoesNotBlockWrites(t *testing.T) {
	ctx := context.Background()
	repo := snapshotRepo.NewMemorySnapshotRepo()

	store, persister := Open(ctx, repo, "trip-cart-storage", nil)
	assert.Error(t, store.AddAccommodation(stay("h1", math.NaN())))
	assert.Error(t, store.AddExperience(activity(7, math.Inf(1))))
	require.NoError(t, store.AddAccommodation(stay("h2", 300)))
	require.NoError(t, persister.Close(ctx))

	assert.Zero(t, persister.Stats().Failures)
	assert.Equal(t, int64(1), persister.Stats().Writes)

	data, err := repo.Load(ctx, "trip-cart-storage")
	require.NoError(t, err)
	snap, err := DecodeSnapshot(data)
	require.NoError(t, err)
	require.Len(t, snap.Accommodations, 1)
	assert.Equal(t, "h2", snap.Accommodations[0].ID)
}

func TestPersister_WriteFailureKeepsMemoryState(t *testing.T) {
	boom := errors.New("quota exceeded")
	var mu sync.Mutex
	var handled []error

	persister := NewPersister(failingWriter{err: boom}, "k", nil, WithErrorHandler(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		handled = append(handled, err)
	}))
	store := NewStore(nil, WithObserver(persister))

	require.NoError(t, store.AddAccommodation(stay("h1", 4500)))

	select {
	case err := <-persister.Errors():
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a persistence error")
	}

	require.NoError(t, persister.Close(context.Background()))
	assert.Equal(t, 4500.0, store.TotalAmount())
	assert.GreaterOrEqual(t, persister.Stats().Failures, int64(1))
	assert.Zero(t, persister.Stats().Writes)

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, handled)
}

func TestPersister_CoalescesToLatestSnapshot(t *testing.T) {
	w := &blockingWriter{release: make(chan struct{})}
	persister := NewPersister(w, "k", nil)
	store := NewStore(nil, WithObserver(persister))

	for i := 1; i <= 20; i++ {
		require.NoError(t, store.AddExperience(activity(i, float64(i))))
	}
	close(w.release)
	require.NoError(t, persister.Close(context.Background()))

	w.mu.Lock()
	defer w.mu.Unlock()
	require.NotEmpty(t, w.saved)
	assert.LessOrEqual(t, len(w.saved), 20)

	last, err := DecodeSnapshot(w.saved[len(w.saved)-1])
	require.NoError(t, err)
	assert.Len(t, last.Experiences, 20)
}

func TestPersister_CloseIsIdempotent(t *testing.T) {
	persister := NewPersister(snapshotRepo.NewMemorySnapshotRepo(), "k", nil)
	require.NoError(t, persister.Close(context.Background()))
	require.NoError(t, persister.Close(context.Background()))

	// scheduling after close is dropped without panicking
	persister.Schedule(models.EmptyCart())
}
