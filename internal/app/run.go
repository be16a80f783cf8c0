package app

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/roster/internal/observability"
	"github.com/yungbote/roster/internal/platform/codec"
	"github.com/yungbote/roster/internal/platform/ctxutil"
	"github.com/yungbote/roster/internal/platform/filehelper"
	"github.com/yungbote/roster/internal/platform/logger"
	"github.com/yungbote/roster/internal/types"
)

const filterMinAge = 21

type Stage string

const (
	StagePopulate   Stage = "populate"
	StageDisplayAll Stage = "display_all"
	StageFilter     Stage = "filter_and_log"
	StageSerialize  Stage = "serialize_and_log"
	StagePersist    Stage = "persist_and_reload"
)

type StageError struct {
	Stage Stage
	Cause error
}

func (e *StageError) Error() string {
	if e == nil {
		return "stage failed"
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

type stage struct {
	name Stage
	fn   func(ctx context.Context) error
}

// Run executes the stages in order and stops at the first failure.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Log == nil || a.Console == nil || a.Out == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, rd := ctxutil.NewRun(ctx)
	log := a.Log.With("run_id", rd.RunID.String())
	ctx, span := observability.Tracer().Start(ctx, "roster.run",
		trace.WithAttributes(attribute.String("run_id", rd.RunID.String())),
	)
	defer span.End()

	var (
		people []types.Person
		blob   string
	)
	stages := []stage{
		{name: StagePopulate, fn: func(context.Context) error {
			people = types.SampleRoster()
			return nil
		}},
		{name: StageDisplayAll, fn: func(context.Context) error {
			for _, p := range people {
				if err := types.DisplayInfo(a.Out, p); err != nil {
					return err
				}
			}
			return nil
		}},
		{name: StageFilter, fn: func(context.Context) error {
			a.Console.Log(fmt.Sprintf("Students older than %d:", filterMinAge))
			for s := range types.StudentsOlderThan(people, filterMinAge) {
				a.Console.Log(s.Summary())
			}
			return nil
		}},
		{name: StageSerialize, fn: func(context.Context) error {
			out, err := codec.Encode(people, a.Cfg.Format)
			if err != nil {
				return err
			}
			blob = out
			a.Console.Log(fmt.Sprintf("Serialized %s:", formatOrDefault(a.Cfg.Format).Label()))
			a.Console.Log(blob)
			return nil
		}},
		{name: StagePersist, fn: func(ctx context.Context) error {
			return persistAndReload(ctx, a.Console, a.DataPath, blob)
		}},
	}

	for _, st := range stages {
		if err := runStage(ctx, log, a.Console, st); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	log.Debug("roster run complete", "people", len(people), "path", a.DataPath)
	return nil
}

// errSink is implemented by sinks that remember a failed write.
type errSink interface {
	Err() error
}

func runStage(ctx context.Context, log *logger.Logger, console logger.Sink, st stage) error {
	if rd := ctxutil.GetRunData(ctx); rd != nil {
		rd.Stage = string(st.name)
	}
	ctx, span := observability.Tracer().Start(ctx, "roster.stage."+string(st.name))
	defer span.End()

	start := time.Now()
	err := st.fn(ctx)
	if err == nil {
		if es, ok := console.(errSink); ok {
			err = es.Err()
		}
	}
	return finishStage(ctx, log, span, st.name, time.Since(start), err)
}

func finishStage(ctx context.Context, log *logger.Logger, span trace.Span, name Stage, dur time.Duration, err error) error {
	stageName := string(name)
	if rd := ctxutil.GetRunData(ctx); rd != nil {
		stageName = rd.Stage
	}
	span.SetAttributes(attribute.String("roster.stage", stageName))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("stage failed", "stage", stageName, "duration_ms", dur.Milliseconds(), "error", err)
		return &StageError{Stage: name, Cause: err}
	}
	log.Debug("stage complete", "stage", stageName, "duration_ms", dur.Milliseconds())
	return nil
}

// persistAndReload appends blob to path and echoes the file back. The write
// is awaited before the read starts.
func persistAndReload(ctx context.Context, console logger.Sink, path, blob string) error {
	if _, err := filehelper.WriteToFileAsync(ctx, path, blob).Await(); err != nil {
		return err
	}
	console.Log("Data written to file: " + path)

	content, err := filehelper.ReadFromFileAsync(ctx, path).Await()
	if err != nil {
		return err
	}
	console.Log("Data read from file:")
	console.Log(content)
	return nil
}

func formatOrDefault(f codec.Format) codec.Format {
	if f == "" {
		return codec.FormatJSON
	}
	return f
}
