package envpath

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/giantswarm/procenv/internal/logging"
)

// Resolver memoizes Find results. Entries are keyed by variable name, the
// variable's current value and the file name, so changing the variable
// bypasses stale entries without explicit invalidation. Files created or
// removed after a lookup are not noticed until Purge.
//
// Concurrent lookups of the same key share one directory scan.
type Resolver struct {
	env   Env
	log   *slog.Logger
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]result
	gen   uint64 // bumped by Purge; scans started under an older gen are not stored
}

type result struct {
	path  string
	found bool
}

// NewResolver creates a Resolver over env. If logger is nil, each lookup
// uses the package-level logger current at that time.
func NewResolver(env Env, logger *slog.Logger) *Resolver {
	return &Resolver{
		env:   env,
		log:   logger,
		cache: make(map[string]result),
	}
}

func (r *Resolver) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}
	return logging.Logger()
}

// cacheKey joins the parts with NUL, which cannot occur in environment
// variable names or values.
func cacheKey(envName, value, fileName string) string {
	return strings.Join([]string{envName, value, fileName}, "\x00")
}

// Find behaves like the package-level Find but serves repeated lookups
// from the cache. The error is non-nil only when ctx is done before a
// result is available.
func (r *Resolver) Find(ctx context.Context, envName, fileName string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("find %s in %s: %w", fileName, envName, err)
	}

	value, ok := r.env.LookupEnv(envName)
	if !ok {
		return "", false, nil
	}

	key := cacheKey(envName, value, fileName)
	r.mu.RLock()
	res, hit := r.cache[key]
	gen := r.gen
	r.mu.RUnlock()
	if hit {
		r.logger().Debug("path lookup cache hit", "env", envName, "file", fileName)
		return res.path, res.found, nil
	}

	// The generation is part of the flight key so callers arriving after a
	// Purge start a fresh scan instead of joining one that predates it.
	flight := key + "\x00" + strconv.FormatUint(gen, 10)
	ch := r.group.DoChan(flight, func() (any, error) {
		path, found := search(r.env, r.logger(), value, fileName)
		res := result{path: path, found: found}
		r.mu.Lock()
		if r.gen == gen {
			r.cache[key] = res
		}
		r.mu.Unlock()
		return res, nil
	})

	select {
	case <-ctx.Done():
		return "", false, fmt.Errorf("find %s in %s: %w", fileName, envName, ctx.Err())
	case out := <-ch:
		res := out.Val.(result) //nolint:forcetypeassert // the only value the closure returns
		if out.Shared {
			r.logger().Debug("path lookup shared with concurrent caller", "env", envName, "file", fileName)
		}
		return res.path, res.found, nil
	}
}

// Purge drops every cached result. Scans still running when Purge is
// called return to their callers but do not repopulate the cache.
func (r *Resolver) Purge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.cache)
	r.gen++
}

// Len returns the number of cached results.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}
