package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type runDataKey struct{}

type RunData struct {
	RunID uuid.UUID
	Stage string
}

func WithRunData(ctx context.Context, rd *RunData) context.Context {
	return context.WithValue(ctx, runDataKey{}, rd)
}

func GetRunData(ctx context.Context) *RunData {
	val := ctx.Value(runDataKey{})
	if rd, ok := val.(*RunData); ok {
		return rd
	}
	return nil
}

// NewRun attaches a fresh run id to ctx.
func NewRun(ctx context.Context) (context.Context, *RunData) {
	rd := &RunData{RunID: uuid.New()}
	return WithRunData(ctx, rd), rd
}
