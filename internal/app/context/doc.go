// Package context provides request-scoped memoization for application
// services.
//
// A RequestContext lives for one request. GetOrFetch caches the result of a
// fetch under a key, and concurrent callers asking for the same key share a
// single in-flight fetch:
//
//	rc := context.New(ctx)
//	ctx = context.WithContext(ctx, rc)
//
//	n, err := context.Fetch(rc, "lines:notes.txt", func(ctx context.Context) (int, error) {
//	    return countLines(ctx, "notes.txt")
//	})
//
// Failed fetches are not cached.
package context
