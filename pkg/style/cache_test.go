package style_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-fieldfmt/internal/logging"
	"github.com/goliatone/go-fieldfmt/pkg/style"
)

type handle struct {
	key string
}

func TestCacheBuildsOncePerKey(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	cache := style.NewCache("test", func(q style.Qualifier) *handle {
		calls.Add(1)
		return &handle{key: q.String()}
	})

	first := cache.Get(style.Q("pct"))
	second := cache.Get(style.Q("pct"))
	if first != second {
		t.Fatalf("expected the same handle for repeated lookups")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("builder calls = %d, want 1", got)
	}
}

func TestCacheConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	cache := style.NewCache("test", func(q style.Qualifier) *handle {
		calls.Add(1)
		return &handle{key: q.String()}
	})

	const workers = 64
	results := make([]*handle, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			results[idx] = cache.Get(style.Q("medium"))
		}(i)
	}
	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("builder calls = %d, want 1", got)
	}
	for i, h := range results {
		if h != results[0] {
			t.Fatalf("worker %d observed a different handle", i)
		}
	}
}

func TestCacheAbsentQualifierIsDistinctKey(t *testing.T) {
	t.Parallel()

	cache := style.NewCache("test", func(q style.Qualifier) *handle {
		return &handle{key: q.String()}
	})

	none := cache.Get(style.NoQualifier)
	empty := cache.Get(style.Q(""))
	if none == empty {
		t.Fatalf("absent and empty qualifiers must not share an entry")
	}
	if cache.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cache.Len())
	}
	if none.key != "<none>" {
		t.Fatalf("absent qualifier key = %q", none.key)
	}
}

func TestCacheLogsBuilds(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(nil) })

	cache := style.NewCache("number", func(q style.Qualifier) *handle {
		return &handle{key: q.String()}
	})
	cache.Get(style.Q("c"))
	cache.Get(style.Q("c"))

	entries := logs.FilterMessage("formatter built").All()
	if len(entries) != 1 {
		t.Fatalf("expected one build log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["cache"] != "number" || fields["qualifier"] != "c" {
		t.Fatalf("unexpected log fields: %v", fields)
	}
}
