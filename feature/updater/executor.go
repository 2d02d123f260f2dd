package updater

import (
	"context"
	"fmt"
	"sync"
	"time"

	"catalog-sync/core/source"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Executor pushes product updates to the source through a bounded worker
// pool. Every submitted request produces exactly one UpdateResult; results
// are returned in completion order, not submission order.
type Executor struct {
	client  source.Client
	logger  *zap.Logger
	limiter *rate.Limiter
	workers int
}

// NewExecutor builds an executor from config. MaxConcurrent values below 1
// are clamped to a single worker.
func NewExecutor(client source.Client, logger *zap.Logger, cfg Config) *Executor {
	workers := cfg.MaxConcurrent
	if workers < 1 {
		workers = 1
	}

	var limiter *rate.Limiter
	if cfg.RateLimitDelayMs > 0 {
		interval := time.Duration(cfg.RateLimitDelayMs) * time.Millisecond
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}

	return &Executor{
		client:  client,
		logger:  logger,
		limiter: limiter,
		workers: workers,
	}
}

// Execute runs all requests through the worker pool and collects one result
// per request. Invalid requests fail locally without touching the network.
// A panic inside a single update is contained and recorded as a failed
// result for that request only.
func (e *Executor) Execute(ctx context.Context, requests []UpdateRequest) []UpdateResult {
	if len(requests) == 0 {
		return []UpdateResult{}
	}

	jobs := make(chan UpdateRequest)
	out := make(chan UpdateResult, len(requests))

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range jobs {
				out <- e.executeOne(ctx, req)
				if e.limiter != nil {
					if err := e.limiter.Wait(ctx); err != nil {
						// Context cancelled; remaining jobs still get
						// results, just without pacing.
						continue
					}
				}
			}
		}()
	}

	for _, req := range requests {
		jobs <- req
	}
	close(jobs)
	wg.Wait()
	close(out)

	results := make([]UpdateResult, 0, len(requests))
	for res := range out {
		results = append(results, res)
	}
	return results
}

// executeOne performs a single update with panic containment.
func (e *Executor) executeOne(ctx context.Context, req UpdateRequest) (res UpdateResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("update panicked",
				zap.Int("product_id", req.ProductID),
				zap.Any("panic", r),
			)
			res = UpdateResult{
				Success:   false,
				Error:     fmt.Sprintf("panic during update of product %d: %v", req.ProductID, r),
				Timestamp: time.Now().UTC(),
			}
		}
	}()

	if err := req.Validate(); err != nil {
		return UpdateResult{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		}
	}

	data, err := e.client.UpdateProduct(ctx, req.ProductID, req.payload())
	if err != nil {
		e.logger.Warn("update failed",
			zap.Int("product_id", req.ProductID),
			zap.Error(err),
		)
		return UpdateResult{
			Success:   false,
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		}
	}

	return UpdateResult{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}
