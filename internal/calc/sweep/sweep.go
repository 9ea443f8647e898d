package sweep

import (
	"context"
	"fmt"
	"sync"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

type Input struct {
	Items []seal.Input `json:"items"`
}

type Result struct {
	Results []seal.Result `json:"results"`
}

// Calculate runs every item through the seal correlations in order. The
// first invalid item aborts the sweep with its index attached.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]seal.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := seal.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

// CalculateParallel fans the sweep out over a bounded pool of workers. The
// calculation is pure, so items are independent; results keep input order.
func CalculateParallel(ctx context.Context, in Input, workers int) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(in.Items) {
		workers = len(in.Items)
	}

	results := make([]seal.Result, len(in.Items))
	errs := make([]error, len(in.Items))
	idx := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				results[i], errs[i] = seal.Calculate(in.Items[i])
			}
		}()
	}

	for i := range in.Items {
		select {
		case idx <- i:
		case <-ctx.Done():
			close(idx)
			wg.Wait()
			return Result{}, ctx.Err()
		}
	}
	close(idx)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return Result{Results: results}, nil
}
