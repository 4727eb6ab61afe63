package context

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

type ctxKey struct{}

// RequestContext memoizes fetches for the duration of one request.
type RequestContext struct {
	ctx   context.Context
	cache sync.Map
	group singleflight.Group
}

// New creates a new RequestContext wrapping the given context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{ctx: ctx}
}

// FromContext extracts RequestContext, returns nil if not present.
func FromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}
	if rc, ok := ctx.Value(ctxKey{}).(*RequestContext); ok {
		return rc
	}
	return nil
}

// WithContext stores RequestContext in the context.
func WithContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// Ensure returns the RequestContext carried by ctx, attaching a new one if
// there is none.
func Ensure(ctx context.Context) (context.Context, *RequestContext) {
	if rc := FromContext(ctx); rc != nil {
		return ctx, rc
	}
	rc := New(ctx)
	return WithContext(ctx, rc), rc
}

// GetOrFetch returns the cached value for key, or runs fetchFn once and
// caches its result. Concurrent calls for one key share the fetch.
func (rc *RequestContext) GetOrFetch(key string, fetchFn func(ctx context.Context) (any, error)) (any, error) {
	if cached, ok := rc.cache.Load(key); ok {
		return cached, nil
	}

	value, err, _ := rc.group.Do(key, func() (any, error) {
		if cached, ok := rc.cache.Load(key); ok {
			return cached, nil
		}
		v, err := fetchFn(rc.ctx)
		if err != nil {
			return nil, err
		}
		rc.cache.Store(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Fetch is GetOrFetch with a typed result.
func Fetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err := rc.GetOrFetch(key, func(ctx context.Context) (any, error) {
		return fetchFn(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cached value for %q is %T", key, v)
	}
	return typed, nil
}

// Context returns the underlying context.
func (rc *RequestContext) Context() context.Context {
	return rc.ctx
}
