package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const dirPerm = 0o755

var (
	// ErrNotRegularFile indicates a copy source or destination is a directory or special file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// FileStore provides the filesystem operations the resolver depends on.
type FileStore interface {
	Exists(path string) (bool, error)
	Copy(src, dst string) error
}

// OSStore works directly against the local filesystem.
type OSStore struct{}

// NewOSStore returns a FileStore backed by the os package.
func NewOSStore() *OSStore {
	return &OSStore{}
}

// Exists reports whether path exists. A missing path is not an error;
// any other stat failure is returned so callers do not mistake it for absence.
func (s *OSStore) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Copy writes the bytes of src to dst, then applies the source's permission
// bits and modification time to dst. Missing parent directories of dst are created.
// The write is not atomic.
func (s *OSStore) Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", src, ErrNotRegularFile)
	}
	if dstInfo, err := os.Stat(dst); err == nil && !dstInfo.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", dst, ErrNotRegularFile)
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	if err := copyContents(src, dst, info.Mode().Perm()); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("apply mode: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("apply times: %w", err)
	}
	return nil
}

func copyContents(src, dst string, perm fs.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
