// Package file reads and writes PNG files for the commands. Writes go
// through a temp file and rename; in-place updates take a file lock so two
// invocations editing the same PNG don't interleave.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/pngstash/pngstash/png"
)

// ReadPng loads and parses the PNG at path.
func ReadPng(path string) (*png.Png, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	p, err := png.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return p, nil
}

// WritePng serializes p to path. The bytes land in a uniquely named temp file
// in the same directory first, then replace path atomically.
func WritePng(path string, p *png.Png) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, uuid.New().String()+".png.tmp")

	if err := os.WriteFile(tmp, p.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	return nil
}

// UpdatePng applies fn to the PNG at path and writes the result back, holding
// a lock file next to the PNG for the whole read-modify-write.
func UpdatePng(path string, fn func(*png.Png) error) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("could not lock %s: %w", path, err)
	}
	defer func() {
		lock.Unlock()
		os.Remove(lock.Path())
	}()

	p, err := ReadPng(path)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return WritePng(path, p)
}
