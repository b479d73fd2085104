package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snapshotRepo "tripcart/database/repository/snapshot"
	"tripcart/models"
)

type brokenReader struct{}

func (brokenReader) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

func TestDecodeSnapshot_Envelope(t *testing.T) {
	data, err := EncodeSnapshot(models.CartSnapshot{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"state":{"accommodations":[],"experiences":[],"nearbySuggestions":[]}}`, string(data))

	snap, err := DecodeSnapshot([]byte(`{"version":1,"state":{"experiences":[{"id":7,"price":1200,"guests":2}]}}`))
	require.NoError(t, err)
	assert.NotNil(t, snap.Accommodations)
	require.Len(t, snap.Experiences, 1)
	assert.Equal(t, 7, snap.Experiences[0].ID)

	_, err = DecodeSnapshot([]byte(`{"version":2,"state":{}}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestLoadSnapshot_FallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := snapshotRepo.NewMemorySnapshotRepo()

	assert.Equal(t, models.EmptyCart(), LoadSnapshot(ctx, repo, "absent", nil))

	require.NoError(t, repo.Save(ctx, "corrupt", []byte("{not json")))
	assert.Equal(t, models.EmptyCart(), LoadSnapshot(ctx, repo, "corrupt", nil))

	require.NoError(t, repo.Save(ctx, "future", []byte(`{"version":9,"state":{}}`)))
	assert.Equal(t, models.EmptyCart(), LoadSnapshot(ctx, repo, "future", nil))

	assert.Equal(t, models.EmptyCart(), LoadSnapshot(ctx, brokenReader{}, "any", nil))
}

func TestOpen_DropsInvalidRestoredRecords(t *testing.T) {
	ctx := context.Background()
	repo := snapshotRepo.NewMemorySnapshotRepo()
	raw := `{"version":1,"state":{"accommodations":[{"id":"h1","guests":2,"rooms":1,"totalAmount":4500},{"id":"bad","guests":0,"rooms":1}],"experiences":[],"nearbySuggestions":[{"id":"s1","selected":true}]}}`
	require.NoError(t, repo.Save(ctx, "trip-cart-storage", []byte(raw)))

	store, persister := Open(ctx, repo, "trip-cart-storage", nil)
	defer persister.Close(ctx)

	assert.Len(t, store.Accommodations(), 1)
	assert.Equal(t, 2, store.TotalItems())
	assert.Equal(t, 4500.0, store.TotalAmount())
}
