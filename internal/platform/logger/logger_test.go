package logger

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsoleLogPrefixesEachLine(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Log("Students older than 21:")
	c.Log("Bob, Age: 22, Grade: 85")

	want := "[LOG]: Students older than 21:\n[LOG]: Bob, Age: 22, Grade: 85\n"
	if got := buf.String(); got != want {
		t.Fatalf("console output: want=%q got=%q", want, got)
	}
}

func TestConsoleLogMultilineMessageKeepsSinglePrefix(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Log("[\n  {}\n]")

	want := "[LOG]: [\n  {}\n]\n"
	if got := buf.String(); got != want {
		t.Fatalf("console output: want=%q got=%q", want, got)
	}
}

func TestLoggerSatisfiesSink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var sink Sink = &Logger{SugaredLogger: zap.New(core).Sugar()}

	sink.Log("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries: want=1 got=%d", len(entries))
	}
	if entries[0].Message != "hello" {
		t.Fatalf("message: want=%q got=%q", "hello", entries[0].Message)
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := (&Logger{SugaredLogger: zap.New(core).Sugar()}).With("run_id", "abc")

	log.Debug("stage done", "stage", "populate")

	entries := logs.FilterField(zap.String("run_id", "abc")).All()
	if len(entries) != 1 {
		t.Fatalf("entries with run_id: want=1 got=%d", len(entries))
	}
}

func TestNewWithLevelRejectsUnknownLevel(t *testing.T) {
	if _, err := NewWithLevel("development", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWithLevelDefaultsToInfo(t *testing.T) {
	log, err := NewWithLevel("production", "")
	if err != nil {
		t.Fatalf("NewWithLevel: %v", err)
	}
	defer log.Sync()
	if log.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Fatalf("debug should be disabled at default level")
	}
}

type brokenWriter struct{ calls int }

func (w *brokenWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("broken pipe")
}

func TestConsoleKeepsFirstWriteError(t *testing.T) {
	w := &brokenWriter{}
	c := NewConsole(w)
	if c.Err() != nil {
		t.Fatalf("fresh console should have no error")
	}

	c.Log("a")
	c.Log("b")

	if c.Err() == nil || c.Err().Error() != "broken pipe" {
		t.Fatalf("Err: want=%q got=%v", "broken pipe", c.Err())
	}
	if w.calls != 2 {
		t.Fatalf("writes attempted: want=2 got=%d", w.calls)
	}
}
