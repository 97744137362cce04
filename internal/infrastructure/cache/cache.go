// Package cache holds resolved upstream results keyed by request kind and
// parameter, and coalesces concurrent requests for the same key.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/uber-go/tally/v4"
	"golang.org/x/sync/singleflight"
)

// Kind identifies the type of upstream request
type Kind string

const (
	KindRepos         Kind = "repos"
	KindRepoDetails   Kind = "repoDetails"
	KindRepoLanguages Kind = "repoLanguages"
)

// Key identifies one cached request
type Key struct {
	Kind  Kind
	Param string
}

func (k Key) String() string {
	if k.Param == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + ":" + k.Param
}

// Cache is a bounded result cache with at most one in-flight load per key.
// Only successful loads are stored; failed loads are retried by the next caller.
type Cache struct {
	entries *expirable.LRU[string, any]
	group   singleflight.Group
	scope   tally.Scope
}

// New creates a cache holding up to size entries, each for at most ttl.
// A zero ttl keeps entries until evicted or purged.
func New(size int, ttl time.Duration, scope tally.Scope) *Cache {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Cache{
		entries: expirable.NewLRU[string, any](size, nil, ttl),
		scope:   scope.SubScope("cache"),
	}
}

// Purge drops every stored result
func (c *Cache) Purge() {
	c.entries.Purge()
}

// Len returns the number of stored results
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Fetch returns the stored result for key or runs load to produce it.
// Concurrent callers with the same key share one load. The load runs with a
// context detached from the caller's cancellation so that one caller going
// away does not fail the others; the caller itself stops waiting on ctx.Done.
func Fetch[T any](ctx context.Context, c *Cache, key Key, load func(context.Context) (T, error)) (T, error) {
	var zero T
	id := key.String()
	scope := c.scope.Tagged(map[string]string{"kind": string(key.Kind)})

	if v, ok := c.entries.Get(id); ok {
		scope.Counter("hit").Inc(1)
		val, _ := v.(T)
		return val, nil
	}
	scope.Counter("miss").Inc(1)

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(id, func() (any, error) {
		// a load for this key may have finished between Get and DoChan
		if v, ok := c.entries.Get(id); ok {
			return v, nil
		}
		scope.Counter("load").Inc(1)
		v, err := load(loadCtx)
		if err != nil {
			scope.Counter("error").Inc(1)
			return nil, err
		}
		c.entries.Add(id, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			scope.Counter("shared").Inc(1)
		}
		val, _ := res.Val.(T)
		return val, nil
	}
}
