package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AnTengye/aiwriter/web/config"
	"github.com/AnTengye/aiwriter/web/model"
)

// scriptedFetch replays statuses in order, returning an error for StatusUnknown entries
type scriptedFetch struct {
	mu       sync.Mutex
	statuses []model.Status
	calls    int
}

func (s *scriptedFetch) fetch(ctx context.Context, id string) (*model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if i >= len(s.statuses) {
		i = len(s.statuses) - 1
	}
	if s.statuses[i] == model.StatusUnknown {
		return nil, errors.New("connection refused")
	}
	return &model.Article{ID: id, Status: s.statuses[i]}, nil
}

func (s *scriptedFetch) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestPoller(fetch FetchFunc) *Poller {
	return NewPoller(fetch, &config.PollConfig{
		Interval:   config.Duration(time.Millisecond),
		MaxBackoff: config.Duration(time.Millisecond),
	})
}

func TestNewPoller(t *testing.T) {
	p := NewPoller(nil, &config.PollConfig{})
	if p.interval != config.DefaultPollInterval {
		t.Errorf("Expected default interval, got %v", p.interval)
	}
	if p.Snapshot() != nil {
		t.Error("Expected nil snapshot before first fetch")
	}
}

func TestPollerStopsAfterTerminal(t *testing.T) {
	tests := []struct {
		name     string
		statuses []model.Status
		final    model.Status
	}{
		{
			name: "full lifecycle",
			statuses: []model.Status{
				model.StatusPending,
				model.StatusResearching,
				model.StatusWriting,
				model.StatusGeneratingImages,
				model.StatusIntegrating,
				model.StatusCompleted,
				model.StatusCompleted,
			},
			final: model.StatusCompleted,
		},
		{
			name:     "failed",
			statuses: []model.Status{model.StatusPending, model.StatusFailed, model.StatusFailed},
			final:    model.StatusFailed,
		},
		{
			name:     "already terminal",
			statuses: []model.Status{model.StatusCompleted, model.StatusCompleted},
			final:    model.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := &scriptedFetch{statuses: tt.statuses}
			p := newTestPoller(script.fetch)

			var seen []model.Status
			article, err := p.Run(context.Background(), "a1", func(a *model.Article) {
				seen = append(seen, a.Status)
			})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if article.Status != tt.final {
				t.Errorf("Expected final status %s, got %s", tt.final, article.Status)
			}

			// Fetches stop on the first terminal response.
			want := len(tt.statuses) - 1
			if script.count() != want {
				t.Errorf("Expected %d fetches, got %d", want, script.count())
			}
			if len(seen) != want {
				t.Errorf("Expected %d updates, got %d", want, len(seen))
			}

			time.Sleep(10 * time.Millisecond)
			if script.count() != want {
				t.Errorf("Expected no fetch after Run returned, got %d", script.count())
			}
		})
	}
}

func TestPollerCancelStopsFetching(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	p := newTestPoller(func(ctx context.Context, id string) (*model.Article, error) {
		if calls.Add(1) == 3 {
			cancel()
		}
		return &model.Article{ID: id, Status: model.StatusWriting}, nil
	})

	updates := 0
	article, err := p.Run(ctx, "a1", func(*model.Article) { updates++ })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if article == nil || article.Status != model.StatusWriting {
		t.Errorf("Expected last snapshot to be returned, got %+v", article)
	}
	if updates != 2 {
		t.Errorf("Expected result of the cancelled fetch to be discarded, got %d updates", updates)
	}

	time.Sleep(10 * time.Millisecond)
	if calls.Load() != 3 {
		t.Errorf("Expected zero fetches after cancellation, got %d total", calls.Load())
	}
}

func TestPollerCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	script := &scriptedFetch{statuses: []model.Status{model.StatusPending}}
	p := newTestPoller(script.fetch)

	article, err := p.Run(ctx, "a1", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if article != nil {
		t.Errorf("Expected nil snapshot, got %+v", article)
	}
	if script.count() != 0 {
		t.Errorf("Expected zero fetches, got %d", script.count())
	}
}

func TestPollerIgnoresFailures(t *testing.T) {
	script := &scriptedFetch{statuses: []model.Status{
		model.StatusUnknown,
		model.StatusPending,
		model.StatusUnknown,
		model.StatusUnknown,
		model.StatusWriting,
		model.StatusCompleted,
	}}

	var p *Poller
	var snapshots []model.Status
	p = newTestPoller(func(ctx context.Context, id string) (*model.Article, error) {
		if s := p.Snapshot(); s != nil {
			snapshots = append(snapshots, s.Status)
		}
		return script.fetch(ctx, id)
	})

	updates := 0
	article, err := p.Run(context.Background(), "a1", func(*model.Article) { updates++ })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if article.Status != model.StatusCompleted {
		t.Errorf("Expected completed, got %s", article.Status)
	}
	if updates != 3 {
		t.Errorf("Expected 3 updates, got %d", updates)
	}

	// The snapshot survives failed fetches unchanged.
	expected := []model.Status{model.StatusPending, model.StatusPending, model.StatusPending, model.StatusWriting}
	if len(snapshots) != len(expected) {
		t.Fatalf("Expected snapshots %v, got %v", expected, snapshots)
	}
	for i := range expected {
		if snapshots[i] != expected[i] {
			t.Errorf("Expected snapshots %v, got %v", expected, snapshots)
			break
		}
	}
}

func TestPollerSingleFlight(t *testing.T) {
	var inFlight, maxInFlight, calls atomic.Int32
	p := newTestPoller(func(ctx context.Context, id string) (*model.Article, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		if n > maxInFlight.Load() {
			maxInFlight.Store(n)
		}
		time.Sleep(3 * time.Millisecond)

		status := model.StatusWriting
		if calls.Add(1) == 5 {
			status = model.StatusCompleted
		}
		return &model.Article{ID: id, Status: status}, nil
	})

	if _, err := p.Run(context.Background(), "a1", nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if maxInFlight.Load() != 1 {
		t.Errorf("Expected at most one fetch in flight, got %d", maxInFlight.Load())
	}
}

func TestPollerDelay(t *testing.T) {
	p := NewPoller(nil, &config.PollConfig{
		Interval:   config.Duration(time.Second),
		MaxBackoff: config.Duration(8 * time.Second),
	})

	tests := []struct {
		failures int
		expected time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 8 * time.Second},
		{100, 8 * time.Second},
	}
	for _, tt := range tests {
		if got := p.delay(tt.failures); got != tt.expected {
			t.Errorf("delay(%d) = %v, want %v", tt.failures, got, tt.expected)
		}
	}

	fixed := NewPoller(nil, &config.PollConfig{
		Interval:   config.Duration(3 * time.Second),
		MaxBackoff: config.Duration(3 * time.Second),
	})
	if got := fixed.delay(5); got != 3*time.Second {
		t.Errorf("Expected fixed interval when max backoff equals interval, got %v", got)
	}
}
