package filehelper

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteThenReadReturnsBlob(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "people_data.txt")
	blob := "[\n  {\n    \"name\": \"Bob\"\n  }\n]"

	if err := WriteToFile(ctx, path, blob); err != nil {
		t.Fatalf("WriteToFile: %v", err)
	}
	got, err := ReadFromFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFromFile: %v", err)
	}
	if got != blob+"\n" {
		t.Fatalf("content: want=%q got=%q", blob+"\n", got)
	}
}

func TestWriteAppends(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "people_data.txt")

	if err := WriteToFile(ctx, path, "first"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteToFile(ctx, path, "second"); err != nil {
		t.Fatalf("second write: %v", err)
	}
	got, err := ReadFromFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFromFile: %v", err)
	}
	if want := "first\nsecond\n"; got != want {
		t.Fatalf("content: want=%q got=%q", want, got)
	}
}

func TestReadMissingFileIsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	got, err := ReadFromFile(context.Background(), path)
	if got != "" {
		t.Fatalf("content: want empty got=%q", got)
	}
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileError, got=%T (%v)", err, err)
	}
	if fe.Code != FileErrorNotFound {
		t.Fatalf("code: want=%q got=%q", FileErrorNotFound, fe.Code)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected errors.Is(err, fs.ErrNotExist)")
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound: want=true")
	}
	if want := "the file " + path + " does not exist"; err.Error() != want {
		t.Fatalf("message: want=%q got=%q", want, err.Error())
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("read must not create the file")
	}
}

func TestWriteToDirectoryIsStorageAccess(t *testing.T) {
	dir := t.TempDir()

	err := WriteToFile(context.Background(), dir, "x")
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileError, got=%T (%v)", err, err)
	}
	if fe.Code != FileErrorStorageAccess {
		t.Fatalf("code: want=%q got=%q", FileErrorStorageAccess, fe.Code)
	}
	if IsNotFound(err) {
		t.Fatalf("IsNotFound: want=false")
	}
}

func TestWriteIntoMissingDirectoryIsStorageAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "people_data.txt")

	err := WriteToFile(context.Background(), path, "x")
	var fe *FileError
	if !errors.As(err, &fe) || fe.Code != FileErrorStorageAccess {
		t.Fatalf("expected storage_access FileError, got=%v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("message %q should name the path", err.Error())
	}
}

func TestCanceledContextSkipsWrite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "people_data.txt")

	err := WriteToFile(ctx, path, "x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got=%v", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("canceled write must not create the file")
	}
}

func TestAsyncWriteThenRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "people_data.txt")

	if _, err := WriteToFileAsync(ctx, path, "blob").Await(); err != nil {
		t.Fatalf("WriteToFileAsync: %v", err)
	}
	pending := ReadFromFileAsync(ctx, path)
	got, err := pending.Await()
	if err != nil {
		t.Fatalf("ReadFromFileAsync: %v", err)
	}
	if got != "blob\n" {
		t.Fatalf("content: want=%q got=%q", "blob\n", got)
	}
	again, err := pending.Await()
	if err != nil || again != got {
		t.Fatalf("second Await: want=%q got=%q err=%v", got, again, err)
	}
}

func TestAsyncReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := ReadFromFileAsync(context.Background(), path).Await()
	if !IsNotFound(err) {
		t.Fatalf("expected not_found, got=%v", err)
	}
}
