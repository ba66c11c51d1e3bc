package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/AnTengye/aiwriter/web/config"
	"github.com/google/uuid"
)

var ErrRegistryClosed = errors.New("watch registry closed")

// Watch is one live status stream for an article
type Watch struct {
	ID        string
	ArticleID string
	StartedAt time.Time
	cancel    context.CancelFunc
}

// WatchRegistry tracks active status streams so they can be counted and
// stopped together on shutdown
type WatchRegistry struct {
	watches    map[string]*Watch
	mu         sync.RWMutex
	maxWatches int // Oldest watch is evicted beyond this, 0 = unlimited
	closed     bool
}

func NewWatchRegistry(cfg *config.PollConfig) *WatchRegistry {
	maxWatches := cfg.MaxWatches
	if maxWatches < 0 {
		maxWatches = 0
	}
	slog.Info("watch registry initialized", "max_watches", maxWatches)
	return &WatchRegistry{
		watches:    make(map[string]*Watch),
		maxWatches: maxWatches,
	}
}

// Register starts tracking a watch on articleID. The returned context is
// cancelled by the release func, by StopAll, or when the watch is evicted.
// Callers must always call release.
func (r *WatchRegistry) Register(ctx context.Context, articleID string) (context.Context, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, nil, ErrRegistryClosed
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w := &Watch{
		ID:        uuid.New().String(),
		ArticleID: articleID,
		StartedAt: time.Now(),
		cancel:    cancel,
	}
	r.watches[w.ID] = w

	r.cleanupIfNeeded()

	return watchCtx, func() { r.deregister(w.ID) }, nil
}

func (r *WatchRegistry) deregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.watches[id]; ok {
		w.cancel()
		delete(r.watches, id)
	}
}

// ByArticle returns the watches on articleID
func (r *WatchRegistry) ByArticle(articleID string) []*Watch {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Watch
	for _, w := range r.watches {
		if w.ArticleID == articleID {
			result = append(result, w)
		}
	}
	return result
}

// Articles returns the distinct watched article IDs, sorted
func (r *WatchRegistry) Articles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	result := []string{}
	for _, w := range r.watches {
		if !seen[w.ArticleID] {
			seen[w.ArticleID] = true
			result = append(result, w.ArticleID)
		}
	}
	sort.Strings(result)
	return result
}

// StopAll cancels every watch and refuses new registrations
func (r *WatchRegistry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	for id, w := range r.watches {
		w.cancel()
		delete(r.watches, id)
	}
	slog.Info("all watches stopped")
}

// cleanupIfNeeded evicts the oldest watches beyond maxWatches
// Must be called with lock held
func (r *WatchRegistry) cleanupIfNeeded() {
	if r.maxWatches <= 0 || len(r.watches) <= r.maxWatches {
		return
	}

	watches := make([]*Watch, 0, len(r.watches))
	for _, w := range r.watches {
		watches = append(watches, w)
	}
	sort.Slice(watches, func(i, j int) bool {
		return watches[i].StartedAt.Before(watches[j].StartedAt)
	})

	removeCount := len(watches) - r.maxWatches
	for i := 0; i < removeCount; i++ {
		slog.Info("evicting oldest watch",
			"article_id", watches[i].ArticleID,
			"started_at", watches[i].StartedAt,
		)
		watches[i].cancel()
		delete(r.watches, watches[i].ID)
	}
}

// Count returns the number of active watches
func (r *WatchRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.watches)
}
