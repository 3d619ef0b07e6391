package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/anvilforge/storefront/internal/domain/model"
	"github.com/anvilforge/storefront/internal/storage/kv"
)

// BuildLedger stores custom configurator builds saved for later.
type BuildLedger struct {
	store kv.Store
	now   func() time.Time
	mu    sync.Mutex
}

// NewBuildLedger constructs a build ledger over the given store.
func NewBuildLedger(store kv.Store) *BuildLedger {
	return &BuildLedger{store: store, now: time.Now}
}

// Save stamps the build with an id and date and appends it to the saved
// collection. A caller-provided id is kept as-is.
func (l *BuildLedger) Save(ctx context.Context, build model.SavedBuild) (model.SavedBuild, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UTC()
	if build.ID == "" {
		build.ID = "custom-build-" + ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	}
	build.Date = now

	builds := kv.ReadJSON(ctx, l.store, savedBuildsKey, []model.SavedBuild{})
	builds = append(builds, build)
	if err := kv.WriteJSON(ctx, l.store, savedBuildsKey, builds); err != nil {
		return model.SavedBuild{}, fmt.Errorf("persist saved builds: %w", err)
	}
	return build, nil
}

// List returns saved builds in insertion order.
func (l *BuildLedger) List(ctx context.Context) []model.SavedBuild {
	return kv.ReadJSON(ctx, l.store, savedBuildsKey, []model.SavedBuild{})
}
