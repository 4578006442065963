package congruence

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/ualat/algebra"
	"github.com/katalvlaran/ualat/partition"
)

// PrincipalCache memoizes principal congruences θ(a, b) for one algebra.
//
// Entries are created on demand and never invalidated (the algebra is
// immutable from the cache's perspective). Concurrent lookups of the same
// missing key compute θ(a, b) at most once: losers block on the winner's
// result instead of duplicating the closure work.
//
// Cached partitions are shared and Normalized; treat them as read-only and
// Clone before refining.
type PrincipalCache struct {
	alg algebra.Algebra

	mu      sync.RWMutex
	entries map[[2]int]*partition.Partition

	// group serializes per-key misses (compute-once guard); unrelated keys
	// never contend with each other.
	group singleflight.Group
}

// NewPrincipalCache wraps one algebra.
//
// Error conditions:
//   - ErrAlgebraNil : alg is nil.
func NewPrincipalCache(alg algebra.Algebra) (*PrincipalCache, error) {
	if alg == nil {
		return nil, ErrAlgebraNil
	}

	return &PrincipalCache{
		alg:     alg,
		entries: make(map[[2]int]*partition.Partition),
	}, nil
}

// Algebra returns the wrapped algebra.
func (c *PrincipalCache) Algebra() algebra.Algebra { return c.alg }

// Get returns θ(a, b), computing and caching it on the first request. The
// pair is canonicalized to (min, max) so Get(1, 0) and Get(0, 1) share one
// entry. Get(a, a) bypasses the cache and returns a fresh discrete
// partition (θ of an identity pair is the bottom congruence).
//
// Error conditions:
//   - ErrBadPair            : an element outside {0..n-1}.
//   - ErrCacheLimitExceeded : storing the entry would exceed a configured
//     WithMaxCached bound (already-cached pairs are still served).
//   - everything Generate can return (cancellation, evaluation errors);
//     failed computations are not cached.
func (c *PrincipalCache) Get(a, b int, opts ...Option) (*partition.Partition, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	n := c.alg.UniverseSize()
	if a < 0 || a >= n || b < 0 || b >= n {
		return nil, fmt.Errorf("%w: (%d,%d) with universe size %d", ErrBadPair, a, b, n)
	}
	if a == b {
		return partition.New(n), nil
	}
	if a > b {
		a, b = b, a
	}
	key := [2]int{a, b}

	// Fast path: already cached.
	c.mu.RLock()
	if p, ok := c.entries[key]; ok {
		c.mu.RUnlock()

		return p, nil
	}
	c.mu.RUnlock()

	// Miss: at most one goroutine per key runs the closure; the rest wait
	// for its result.
	v, err, _ := c.group.Do(fmt.Sprintf("%d:%d", a, b), func() (interface{}, error) {
		// Re-check under the lock: a winner may have finished between the
		// fast path and Do. Fail before computing when the cache is full —
		// the budget exists to stop allocation, not to discard finished work.
		c.mu.RLock()
		p, ok := c.entries[key]
		full := o.MaxCached > 0 && len(c.entries) >= o.MaxCached
		c.mu.RUnlock()
		if ok {
			return p, nil
		}
		if full {
			return nil, fmt.Errorf("%w: budget %d", ErrCacheLimitExceeded, o.MaxCached)
		}

		p, genErr := Principal(c.alg, a, b, opts...)
		if genErr != nil {
			return nil, genErr
		}

		c.mu.Lock()
		if o.MaxCached > 0 && len(c.entries) >= o.MaxCached {
			c.mu.Unlock()

			return nil, fmt.Errorf("%w: budget %d", ErrCacheLimitExceeded, o.MaxCached)
		}
		c.entries[key] = p
		c.mu.Unlock()

		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*partition.Partition), nil
}

// PrecomputeAll computes θ(a, b) for every unordered pair once, in
// parallel across pairs (each pair's closure is independent; all workers
// share this cache). This is the dominant cost center for large algebras:
// O(n²) Generate calls, each itself combinatorial.
//
// Options: WithWorkers bounds parallelism (default: one per CPU);
// WithContext / WithProgress cancel between pairs and receive the fraction
// of pairs completed; WithMaxCached fails fast before any computation when
// the full pair table would not fit the bound.
//
// Error conditions:
//   - ErrOptionViolation, ErrCacheLimitExceeded, ErrCancelled, and anything
//     Generate returns; the first failure cancels the remaining work.
func (c *PrincipalCache) PrecomputeAll(opts ...Option) error {
	o, err := gatherOptions(opts...)
	if err != nil {
		return err
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := c.alg.UniverseSize()
	total := n * (n - 1) / 2
	if o.MaxCached > 0 && total > o.MaxCached {
		return fmt.Errorf("%w: %d pairs against budget %d", ErrCacheLimitExceeded, total, o.MaxCached)
	}
	if total == 0 {
		o.Progress.ReportProgress(1)

		return nil
	}

	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(workers)

	var done atomic.Int64
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			a, b := a, b
			g.Go(func() error {
				if cancelErr := checkCancelCtx(ctx, o.Progress); cancelErr != nil {
					return cancelErr
				}
				if _, getErr := c.Get(a, b, WithContext(ctx)); getErr != nil {
					return getErr
				}
				o.Progress.ReportProgress(float64(done.Add(1)) / float64(total))

				return nil
			})
		}
	}

	return g.Wait()
}

// checkCancelCtx is checkCancel for an already-unwrapped context.
func checkCancelCtx(ctx context.Context, p Progress) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if p.ShouldCancel() {
		return ErrCancelled
	}

	return nil
}

// Stats returns how many distinct pairs are cached and how many unordered
// pairs the universe has in total.
func (c *PrincipalCache) Stats() (cached, totalPairs int) {
	c.mu.RLock()
	cached = len(c.entries)
	c.mu.RUnlock()
	n := c.alg.UniverseSize()

	return cached, n * (n - 1) / 2
}

// Clear drops every cached entry.
func (c *PrincipalCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[[2]int]*partition.Partition)
	c.mu.Unlock()
}
