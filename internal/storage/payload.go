// Package storage persists submitted audio payloads on local disk, one temp
// file per in-flight job. Each slot is exclusively owned by its job from Save
// until the worker's cleanup; no other component touches it.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore stores payloads under a root directory as "<job_id>_<filename>".
type DiskStore struct {
	root string
}

// NewDiskStore creates a DiskStore rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{root: dir}
}

// Save writes the payload to the slot keyed by jobID and returns its location.
// The client-supplied filename is reduced to its base name so it cannot escape
// the upload directory.
func (s *DiskStore) Save(jobID, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.root, 0o750); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "payload"
	}
	location := filepath.Join(s.root, jobID+"_"+name)

	f, err := os.OpenFile(location, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create payload file: %w", err)
	}

	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(location)
		return "", fmt.Errorf("write payload: %w", err)
	}
	if err = f.Close(); err != nil {
		os.Remove(location)
		return "", fmt.Errorf("close payload file: %w", err)
	}
	return location, nil
}

// Exists reports whether the payload at location is still present.
func (s *DiskStore) Exists(location string) bool {
	info, err := os.Stat(location)
	return err == nil && !info.IsDir()
}

// Remove deletes the payload at location. A missing payload is not an error,
// so cleanup stays idempotent under message redelivery.
func (s *DiskStore) Remove(location string) error {
	if err := os.Remove(location); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove payload: %w", err)
	}
	return nil
}
