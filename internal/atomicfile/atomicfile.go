// Package atomicfile publishes a file atomically: content is written to a
// unique temp file in the target's own directory (so the final rename never
// crosses a filesystem boundary) and renamed over the target only on Commit.
// Observers of the target path see either the old state or the complete new
// content, never a partial write.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// TargetMode is applied to the published file: owner rwx, group and other
// read-only.
const TargetMode os.FileMode = 0744

// File is a pending atomic write. Write content, then either Commit to
// publish it or Cleanup to discard it. Deferring Cleanup is safe in both
// cases: after a successful Commit it does nothing.
type File struct {
	f         *os.File
	target    string
	committed bool
	closed    bool
}

// Create opens a temp file next to target. The temp name starts with
// "sconv-" so a crashed run's leftovers are recognizable.
func Create(target string) (*File, error) {
	dir := filepath.Dir(target)
	f, err := os.CreateTemp(dir, "sconv-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	return &File{f: f, target: target}, nil
}

// Name returns the temp file's path.
func (a *File) Name() string {
	return a.f.Name()
}

func (a *File) Write(p []byte) (int, error) {
	return a.f.Write(p)
}

// Commit closes the temp file, fixes its permissions and renames it over the
// target. After Commit returns nil the target holds the full content.
func (a *File) Commit() error {
	if err := a.close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(a.f.Name(), TargetMode); err != nil {
		return fmt.Errorf("failed to change permissions of output file: %w", err)
	}
	if err := os.Rename(a.f.Name(), a.target); err != nil {
		return fmt.Errorf("failed to swap temp file to output file: %w", err)
	}
	a.committed = true
	return nil
}

// Cleanup removes the temp file unless Commit already published it.
func (a *File) Cleanup() {
	if a.committed {
		return
	}
	a.close()
	os.Remove(a.f.Name())
}

func (a *File) close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	return a.f.Close()
}
