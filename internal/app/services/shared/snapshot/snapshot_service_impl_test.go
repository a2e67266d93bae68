package snapshot

import (
	"context"
	"medassist-service/internal/app/config"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedisRepository struct {
	data map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: make(map[string]string)}
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.data[key] = string(raw)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.data[key], nil
}

func (r *fakeRedisRepository) IncrementWithExpiry(ctx context.Context, key string, exp time.Duration) (int64, error) {
	return 0, nil
}

func (r *fakeRedisRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	return 0, nil
}

func TestSnapshotService_SaveAndGet(t *testing.T) {
	store := NewSnapshotService(newFakeRedisRepository(), &config.InternalConfig{})
	ctx := context.Background()

	patients := []responses.Patient{
		{ID: "patient-1", Name: "Asha", Age: 34, Gender: constvars.GenderFemale},
		{ID: "patient-2", Name: "Ravi", Age: 61, Gender: constvars.GenderMale},
	}
	require.NoError(t, store.Save(ctx, constvars.SnapshotCollectionPatients, patients))

	var cached []responses.Patient
	found, err := store.Get(ctx, constvars.SnapshotCollectionPatients, &cached)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, patients, cached)
}

func TestSnapshotService_GetMissing(t *testing.T) {
	store := NewSnapshotService(newFakeRedisRepository(), &config.InternalConfig{})

	var cached []responses.Patient
	found, err := store.Get(context.Background(), constvars.SnapshotCollectionPatients, &cached)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, cached)
}

func TestSnapshotService_LastSync(t *testing.T) {
	store := NewSnapshotService(newFakeRedisRepository(), &config.InternalConfig{})
	ctx := context.Background()

	_, found, err := store.LastSync(ctx)
	require.NoError(t, err)
	assert.False(t, found, "no sync recorded before the first save")

	before := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Save(ctx, constvars.SnapshotCollectionDiagnoses, []responses.Diagnosis{}))

	lastSync, found, err := store.LastSync(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, lastSync.Before(before), "last sync should be stamped at save time")
}

func TestSnapshotService_ClearAll(t *testing.T) {
	store := NewSnapshotService(newFakeRedisRepository(), &config.InternalConfig{})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, constvars.SnapshotCollectionPatients, []responses.Patient{{ID: "patient-1"}}))
	require.NoError(t, store.Save(ctx, constvars.SnapshotCollectionDiagnoses, []responses.Diagnosis{{ID: "diag-1"}}))

	require.NoError(t, store.ClearAll(ctx))

	var patients []responses.Patient
	found, err := store.Get(ctx, constvars.SnapshotCollectionPatients, &patients)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.LastSync(ctx)
	require.NoError(t, err)
	assert.False(t, found, "clear should also drop the last-sync marker")
}
