package filehelper

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
)

// WriteToFile appends content and a trailing newline to path, creating it if
// needed. The handle is closed on every return path.
func WriteToFile(ctx context.Context, path, content string) (err error) {
	const op = "write"
	if err := ctx.Err(); err != nil {
		return storageAccess(op, path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return storageAccess(op, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = storageAccess(op, path, cerr)
		}
	}()
	if _, err := io.WriteString(f, content+"\n"); err != nil {
		return storageAccess(op, path, err)
	}
	return nil
}

// ReadFromFile returns the full contents of path. A missing path is reported
// as FileErrorNotFound without opening anything.
func ReadFromFile(ctx context.Context, path string) (string, error) {
	const op = "read"
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFound(op, path)
		}
		return "", storageAccess(op, path, err)
	}
	if err := ctx.Err(); err != nil {
		return "", storageAccess(op, path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFound(op, path)
		}
		return "", storageAccess(op, path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", storageAccess(op, path, err)
	}
	return string(data), nil
}
