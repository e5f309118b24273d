package flows

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/polyglotfm/plx/internal/models"
)

// AuditOpts contains configuration for a feed audit sweep.
type AuditOpts struct {
	NumWorkers int     // Concurrent validations (default: 4)
	RateLimit  float64 // Validation requests per second (default: 5)
}

// FeedAuditResult is the verdict for one podcast's RSS feed.
type FeedAuditResult struct {
	Podcast models.Podcast
	Healthy bool
	Detail  string // Backend's reason when unhealthy
	Err     error  // Transport/API failure, distinct from an unhealthy verdict
}

// AuditResult summarizes a full feed audit.
type AuditResult struct {
	Total     int
	Healthy   int
	Unhealthy int
	Failed    int
	Results   []FeedAuditResult
}

// AuditFeeds re-validates the RSS feed of every podcast in the store through
// a rate-limited worker pool, reporting feeds the backend can no longer
// parse. Progress updates are sent without blocking; a nil channel disables
// them.
func (e *Engine) AuditFeeds(ctx context.Context, progress chan<- ProgressUpdate, opts AuditOpts) (*AuditResult, error) {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	podcasts := e.store.State().Podcasts
	result := &AuditResult{
		Total:   len(podcasts),
		Results: make([]FeedAuditResult, 0, len(podcasts)),
	}
	if len(podcasts) == 0 {
		return result, nil
	}

	e.sendProgress(progress, fetchLibraryUpdate(0, len(podcasts)))

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan models.Podcast, len(podcasts))
	verdicts := make(chan FeedAuditResult, len(podcasts))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for podcast := range jobs {
				if err := limiter.Wait(ctx); err != nil {
					verdicts <- FeedAuditResult{Podcast: podcast, Err: err}
					continue
				}

				validation, err := e.api.ValidateRSSFeed(ctx, podcast.RSSFeedURL)
				if err != nil {
					verdicts <- FeedAuditResult{Podcast: podcast, Err: err}
					continue
				}

				verdicts <- FeedAuditResult{
					Podcast: podcast,
					Healthy: validation.IsValid,
					Detail:  validation.Error,
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, podcast := range podcasts {
			select {
			case <-ctx.Done():
				return
			case jobs <- podcast:
				e.sendProgress(progress, validatingFeedUpdate(i+1, len(podcasts), podcast.Title))
			}
		}
	}()

	go func() {
		wg.Wait()
		close(verdicts)
	}()

	completed := 0
	for verdict := range verdicts {
		completed++
		result.Results = append(result.Results, verdict)

		switch {
		case verdict.Err != nil:
			result.Failed++
		case verdict.Healthy:
			result.Healthy++
		default:
			result.Unhealthy++
		}

		e.sendProgress(progress, feedVerdictUpdate(completed, len(podcasts), verdict.Podcast.Title, verdict.Healthy && verdict.Err == nil))
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
