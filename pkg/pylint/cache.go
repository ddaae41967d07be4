package pylint

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"pylintd/pkg/domain"
	"pylintd/pkg/metrics"
	"pylintd/pkg/serrors"
)

// CachedRunner serves repeated sources from an LRU cache and collapses
// concurrent runs of the same source into one pylint process. Only successful
// reports are cached.
type CachedRunner struct {
	next   Runner
	cache  *lru.Cache[string, *domain.Report]
	flight singleflight.Group
}

var _ Runner = (*CachedRunner)(nil)

// NewCachedRunner wraps next with a cache of size reports. A size <= 0
// returns next unchanged.
func NewCachedRunner(next Runner, size int) (Runner, error) {
	if size <= 0 {
		return next, nil
	}

	cache, err := lru.New[string, *domain.Report](size)
	if err != nil {
		return nil, fmt.Errorf("could not create report cache: %w", err)
	}

	return &CachedRunner{next: next, cache: cache}, nil
}

// Run returns the cached report for (fileName, source) or runs pylint.
// Concurrent callers share one run, which is detached from their contexts:
// a caller that gives up stops waiting without failing the others. The run
// itself stays bounded by the runner's timeout.
func (c *CachedRunner) Run(ctx context.Context, fileName, source string) (*domain.Report, error) {
	fileName = SanitizeFileName(fileName)
	key := domain.SourceHash(fileName, source)

	if report, ok := c.cache.Get(key); ok {
		metrics.LintCacheHits.Inc()

		return report.Clone(), nil
	}

	runCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(key, func() (any, error) {
		report, err := c.next.Run(runCtx, fileName, source)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, report.Clone())

		return report, nil
	})

	select {
	case <-ctx.Done():
		return nil, serrors.Wrap(serrors.ErrUnavailable, ctx.Err(), "pylint run cancelled")
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err //nolint: wrapcheck
		}
		report, _ := res.Val.(*domain.Report)

		return report.Clone(), nil
	}
}

// Len returns the number of cached reports.
func (c *CachedRunner) Len() int {
	return c.cache.Len()
}
