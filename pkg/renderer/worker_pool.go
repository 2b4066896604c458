package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// rowProgress serializes progress callbacks from concurrent rows
type rowProgress struct {
	mu        sync.Mutex
	completed int
	total     int
	callback  ProgressFunc
}

func (p *rowProgress) done(row int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	if p.callback != nil {
		p.callback(Progress{Row: row, Completed: p.completed, Total: p.total})
	}
}

// RenderContext renders rows concurrently, at most Options.Workers at a time.
// Rows write disjoint parts of the frame, so the image is identical to Render's.
// Cancelling ctx stops handing out rows and returns ctx's error with a partial frame.
func (rt *Raytracer) RenderContext(ctx context.Context, progress ProgressFunc) (*Frame, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.config.Width, rt.camera.config.Height
	frame := NewFrame(width, height)
	tracker := &rowProgress{total: height, callback: progress}

	rt.logger.Infof("Rendering %dx%d with %d workers, %d samples per pixel, %d bounces",
		width, height, rt.workers, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth)

	// Use errgroup and semaphore to limit concurrency.
	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(rt.workers))

	var err error
	for j := 0; j < height; j++ {
		if err = sem.Acquire(ctx, 1); err != nil {
			err = fmt.Errorf("while waiting to render row %d: %w", j, err)
			break
		}

		eg.Go(func() error {
			defer sem.Release(1)
			if err := ctx.Err(); err != nil {
				return err
			}
			rt.renderRow(frame, j)
			tracker.done(j)
			rt.logger.Debugf("Row %d done", j)
			return nil
		})
	}

	if waitErr := eg.Wait(); waitErr != nil && err == nil {
		err = fmt.Errorf("while waiting for rows to finish: %w", waitErr)
	}

	stats := rt.stats(rt.workers, time.Since(start))
	if err != nil {
		rt.logger.Warningf("Render stopped after %d of %d rows: %v", tracker.completed, height, err)
		return frame, stats, err
	}

	rt.logger.Infof("Finished in %v", stats.Duration)
	return frame, stats, nil
}
