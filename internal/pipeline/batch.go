package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// BatchResult is the outcome of one request in a batch.
type BatchResult struct {
	Index     int              `json:"index"`
	Screening *types.Screening `json:"screening,omitempty"`
	Err       error            `json:"-"`
	Error     string           `json:"error,omitempty"`
}

// ScreenBatch screens reqs with bounded concurrency. A failing request does not
// cancel the others; its error is reported in its BatchResult. Results are in
// request order.
func (s *Screener) ScreenBatch(ctx context.Context, reqs []types.ScreeningRequest) []BatchResult {
	results := make([]BatchResult, len(reqs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i := range reqs {
		g.Go(func() error {
			res := BatchResult{Index: i}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res.Screening, res.Err = s.Screen(ctx, reqs[i])
			}
			if res.Err != nil {
				res.Error = res.Err.Error()
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.Info("batch screening complete",
		zap.Int("total", len(reqs)),
		zap.Int("failed", failed))
	return results
}
