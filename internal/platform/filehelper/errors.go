package filehelper

import (
	"errors"
	"fmt"
	"io/fs"
)

type FileErrorCode string

const (
	FileErrorNotFound      FileErrorCode = "not_found"
	FileErrorStorageAccess FileErrorCode = "storage_access"
)

type FileError struct {
	Code  FileErrorCode
	Op    string
	Path  string
	Cause error
}

func (e *FileError) Error() string {
	if e == nil {
		return "file operation failed"
	}
	if e.Code == FileErrorNotFound {
		return fmt.Sprintf("the file %s does not exist", e.Path)
	}
	return fmt.Sprintf("%s %s (code=%s): %v", e.Op, e.Path, e.Code, e.Cause)
}

func (e *FileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func IsNotFound(err error) bool {
	var fe *FileError
	return errors.As(err, &fe) && fe.Code == FileErrorNotFound
}

func notFound(op, path string) *FileError {
	return &FileError{Code: FileErrorNotFound, Op: op, Path: path, Cause: fs.ErrNotExist}
}

func storageAccess(op, path string, cause error) *FileError {
	return &FileError{Code: FileErrorStorageAccess, Op: op, Path: path, Cause: cause}
}
