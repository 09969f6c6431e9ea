package memory

import (
	"time"

	"brandlaunch-be/pkg/stage"

	"github.com/patrickmn/go-cache"
)

// StageRepository caches stage-machine snapshots per user so a reconnecting
// client resumes the same visual position. Advisory only; snapshots expire
// and are re-derivable from the consultation record.
type StageRepository struct {
	cache *cache.Cache
}

func NewStageRepository() *StageRepository {
	// Default expiration 1 hour, purge every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &StageRepository{
		cache: c,
	}
}

func (r *StageRepository) Save(ownerId string, snapshot stage.Snapshot) {
	r.cache.Set(ownerId, snapshot, cache.DefaultExpiration)
}

func (r *StageRepository) Get(ownerId string) (stage.Snapshot, bool) {
	if x, found := r.cache.Get(ownerId); found {
		return x.(stage.Snapshot), true
	}
	return stage.Snapshot{}, false
}

func (r *StageRepository) Delete(ownerId string) {
	r.cache.Delete(ownerId)
}
