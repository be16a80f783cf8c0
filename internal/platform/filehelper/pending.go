package filehelper

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pending is the result of an operation running on its own goroutine.
type Pending[T any] struct {
	g   *errgroup.Group
	val T
}

func goPending[T any](ctx context.Context, fn func(context.Context) (T, error)) *Pending[T] {
	g, gctx := errgroup.WithContext(ctx)
	p := &Pending[T]{g: g}
	g.Go(func() error {
		v, err := fn(gctx)
		if err != nil {
			return err
		}
		p.val = v
		return nil
	})
	return p
}

// Await blocks until the operation finishes. It may be called more than once.
func (p *Pending[T]) Await() (T, error) {
	err := p.g.Wait()
	return p.val, err
}

func WriteToFileAsync(ctx context.Context, path, content string) *Pending[struct{}] {
	return goPending(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, WriteToFile(ctx, path, content)
	})
}

func ReadFromFileAsync(ctx context.Context, path string) *Pending[string] {
	return goPending(ctx, func(ctx context.Context) (string, error) {
		return ReadFromFile(ctx, path)
	})
}
