package subtree_cache

import (
	"sync"
	"time"

	"github.com/Aurelle-Shop/aurelle-store-backend/catalog"
	"github.com/google/uuid"
)

const TTL = 5 * time.Minute

// ── Resolved-subtree cache ───────────────────────────────────────────────────
// The catalog is read-only to this service, so resolved category subtrees
// (descendant ids, ordered children, effective filterable attributes) are
// cached per category id and aged out by TTL alone.

type subtreeEntry struct {
	resolved  *catalog.ResolvedCategory
	fetchedAt time.Time
}

var (
	subtreeMu    sync.RWMutex
	subtreeCache = make(map[uuid.UUID]subtreeEntry)
)

func Get(categoryID uuid.UUID) (*catalog.ResolvedCategory, bool) {
	subtreeMu.RLock()
	defer subtreeMu.RUnlock()
	entry, ok := subtreeCache[categoryID]
	if ok && time.Since(entry.fetchedAt) < TTL {
		return entry.resolved, true
	}
	return nil, false
}

func Set(categoryID uuid.UUID, resolved *catalog.ResolvedCategory) {
	subtreeMu.Lock()
	defer subtreeMu.Unlock()
	subtreeCache[categoryID] = subtreeEntry{resolved: resolved, fetchedAt: time.Now()}
}
