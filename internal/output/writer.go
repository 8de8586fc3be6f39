// Package output persists rendered artifact text to the filesystem.
// Writes go through a temporary file and an atomic rename so readers
// never observe a torn file, even if the process dies mid-write.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilePrefix is the shared basename prefix of every emitted artifact.
const FilePrefix = "owasp_agentic_top10_"

// IOWriteError reports a failed write or rename for one target path.
type IOWriteError struct {
	Path string
	Err  error
}

func (e *IOWriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOWriteError) Unwrap() error { return e.Err }

// Writer writes artifacts under a single output directory.
type Writer struct {
	Dir string
}

// Filename returns the artifact basename for a view/extension pair.
func Filename(viewName, ext string) string {
	return FilePrefix + viewName + "." + ext
}

// Write persists data as owasp_agentic_top10_<view>.<ext> under the
// writer's directory, creating the directory if needed. Existing files
// are replaced unconditionally. Returns the final path.
func (w Writer) Write(viewName, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", &IOWriteError{Path: w.Dir, Err: err}
	}

	path := filepath.Join(w.Dir, Filename(viewName, ext))

	tmp, err := os.CreateTemp(w.Dir, "."+FilePrefix+viewName+"-*")
	if err != nil {
		return "", &IOWriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &IOWriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &IOWriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return "", &IOWriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", &IOWriteError{Path: path, Err: err}
	}

	return path, nil
}
