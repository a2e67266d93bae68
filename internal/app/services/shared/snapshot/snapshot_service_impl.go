package snapshot

import (
	"context"
	"medassist-service/internal/app/config"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
)

type snapshotService struct {
	redisRepository contracts.RedisRepository
	ttl             time.Duration
}

func NewSnapshotService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SnapshotStore {
	var ttl time.Duration
	if internalConfig.Snapshot.TTLInHours > 0 {
		ttl = time.Duration(internalConfig.Snapshot.TTLInHours) * time.Hour
	}
	return &snapshotService{
		redisRepository: redisRepository,
		ttl:             ttl,
	}
}

// Save overwrites the collection snapshot wholesale and stamps last-sync.
// Two racing saves resolve last-write-wins, which is acceptable for a cache.
func (s *snapshotService) Save(ctx context.Context, collection string, items interface{}) error {
	err := s.redisRepository.Set(ctx, constvars.SnapshotKeyPrefix+collection, items, s.ttl)
	if err != nil {
		return err
	}
	return s.redisRepository.Set(ctx, constvars.SnapshotLastSyncKey, time.Now().UTC().Format(time.RFC3339), s.ttl)
}

func (s *snapshotService) Get(ctx context.Context, collection string, out interface{}) (bool, error) {
	data, err := s.redisRepository.Get(ctx, constvars.SnapshotKeyPrefix+collection)
	if err != nil {
		return false, err
	}
	if data == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *snapshotService) LastSync(ctx context.Context) (time.Time, bool, error) {
	data, err := s.redisRepository.Get(ctx, constvars.SnapshotLastSyncKey)
	if err != nil {
		return time.Time{}, false, err
	}
	if data == "" {
		return time.Time{}, false, nil
	}
	var stamp string
	if err := json.Unmarshal([]byte(data), &stamp); err != nil {
		return time.Time{}, false, err
	}
	lastSync, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, false, err
	}
	return lastSync, true, nil
}

func (s *snapshotService) ClearAll(ctx context.Context) error {
	keys := []string{
		constvars.SnapshotKeyPrefix + constvars.SnapshotCollectionPatients,
		constvars.SnapshotKeyPrefix + constvars.SnapshotCollectionDiagnoses,
		constvars.SnapshotLastSyncKey,
	}
	for _, key := range keys {
		if err := s.redisRepository.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
