package dispatch

import (
	"context"

	"github.com/handiism/vidscribe/internal/model"
	"golang.org/x/sync/errgroup"
)

// LookupResult is the video info lookup for one URL of a batch.
type LookupResult struct {
	URL     string
	Info    *model.VideoInfo
	Outcome model.Outcome
}

// FetchVideoInfoAll looks up several URLs concurrently.
//
// At most Settings.MaxConcurrentLookups requests are in flight. Results are
// in input order and a failed lookup does not stop the others.
func (d *Dispatcher) FetchVideoInfoAll(ctx context.Context, urls []string) []LookupResult {
	results := make([]LookupResult, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	if d.maxLookups > 0 {
		g.SetLimit(d.maxLookups)
	}

	for i, url := range urls {
		g.Go(func() error {
			info, outcome := d.FetchVideoInfo(ctx, url)
			results[i] = LookupResult{URL: url, Info: info, Outcome: outcome}
			if !outcome.OK() {
				d.notify(Notice{Message: url + ": " + outcome.Message, Level: levelFor(outcome.Kind)})
			}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
