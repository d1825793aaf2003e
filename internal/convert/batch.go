package convert

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ConvertBatch converts ids with at most workers conversions in flight.
// Results keep the order of ids. A failing component never stops the
// others; the returned error joins every component error.
func (c *Converter) ConvertBatch(ctx context.Context, ids []string, workers int) ([]*Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]*Result, len(ids))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, id := range ids {
		g.Go(func() error {
			res, err := c.ConvertComponent(ctx, id)
			if res == nil {
				res = &Result{ID: id}
			}
			res.Err = err
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	converted := 0
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		converted++
	}
	c.log.Info("batch finished",
		zap.Int("components", len(ids)),
		zap.Int("converted", converted),
		zap.Int("failed", len(errs)))

	return results, errors.Join(errs...)
}
